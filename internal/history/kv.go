package history

// MapKV is an in-memory KV backend. Used in tests and when the
// application runs without a persistent store.
type MapKV struct {
	m map[string]string
}

// NewMapKV creates an empty in-memory KV.
func NewMapKV() *MapKV {
	return &MapKV{m: make(map[string]string)}
}

func (k *MapKV) Get(key string) (string, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *MapKV) Set(key, value string) error {
	k.m[key] = value
	return nil
}
