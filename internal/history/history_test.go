package history

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecordSeen_CountsUniqueTexts(t *testing.T) {
	store := New(NewMapKV())

	texts := []string{
		"What is the speed limit in a residential area?",
		"How far before a turn must you signal?",
		"What is the BAC limit for drivers over 21?",
	}
	store.RecordSeen(texts)

	if got := store.SeenCount(); got != 3 {
		t.Errorf("SeenCount() = %d, want 3", got)
	}
}

func TestRecordSeen_DuplicateFree(t *testing.T) {
	store := New(NewMapKV())

	store.RecordSeen([]string{"Same question twice"})
	store.RecordSeen([]string{"Same question twice"})

	if got := store.SeenCount(); got != 1 {
		t.Errorf("SeenCount() = %d, want 1 after duplicate insert", got)
	}
}

func TestRecordSeen_CapsAtMaxEntries(t *testing.T) {
	store := New(NewMapKV())

	// Insert 600 unique questions over several calls.
	for batch := 0; batch < 6; batch++ {
		texts := make([]string, 100)
		for i := range texts {
			texts[i] = fmt.Sprintf("Unique question %d?", batch*100+i)
		}
		store.RecordSeen(texts)
	}

	hashes := store.SeenHashes()
	if len(hashes) != MaxEntries {
		t.Fatalf("len(SeenHashes()) = %d, want %d", len(hashes), MaxEntries)
	}

	// The most recently inserted 500 survive: questions 100..599.
	if hashes[0] != Hash("Unique question 100?") {
		t.Errorf("oldest retained hash = %q, want hash of question 100", hashes[0])
	}
	if hashes[len(hashes)-1] != Hash("Unique question 599?") {
		t.Errorf("newest retained hash = %q, want hash of question 599", hashes[len(hashes)-1])
	}
}

func TestSeenHashes_CorruptValue(t *testing.T) {
	kv := NewMapKV()
	if err := kv.Set(storeKey, "not json at all"); err != nil {
		t.Fatal(err)
	}
	store := New(kv)

	if got := store.SeenHashes(); len(got) != 0 {
		t.Errorf("SeenHashes() = %v, want empty for corrupt value", got)
	}

	// RecordSeen must still work, replacing the corrupt value.
	store.RecordSeen([]string{"Fresh question"})
	if got := store.SeenCount(); got != 1 {
		t.Errorf("SeenCount() = %d, want 1 after recovery", got)
	}
}

// failingKV always errors, standing in for a broken backing store.
type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("store offline") }
func (failingKV) Set(string, string) error         { return errors.New("store offline") }

func TestRecordSeen_SwallowsStoreFailure(t *testing.T) {
	store := New(failingKV{})

	// Must not panic or propagate anything.
	store.RecordSeen([]string{"Some question"})

	if got := store.SeenCount(); got != 0 {
		t.Errorf("SeenCount() = %d, want 0 when store is unavailable", got)
	}
}
