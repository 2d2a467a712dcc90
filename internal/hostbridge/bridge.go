// Package hostbridge abstracts the host environment's credential
// selection facility. On a managed host the application can ask the
// platform to present a key picker; everywhere else the bridge is a
// no-op and credentials come from the environment.
package hostbridge

import "context"

// KeySelector reports and drives the host's API key selection.
type KeySelector interface {
	// HasSelectedKey reports whether a usable key is already selected.
	HasSelectedKey(ctx context.Context) (bool, error)

	// OpenSelectKey asks the host to present its key picker. Returns
	// once the dialog has been requested, not once a key is chosen.
	OpenSelectKey(ctx context.Context) error
}

// Noop is the bridge used outside managed hosts. It never reports a
// selected key and treats the picker request as unsupported but
// harmless.
type Noop struct{}

func (Noop) HasSelectedKey(ctx context.Context) (bool, error) { return false, nil }

func (Noop) OpenSelectKey(ctx context.Context) error { return nil }

var _ KeySelector = Noop{}

// EnvSelector reports a key as selected when the provided probe
// returns a non-empty credential. It cannot open a picker.
type EnvSelector struct {
	// Probe returns the cleaned credential, or empty when absent.
	Probe func() string
}

func (e EnvSelector) HasSelectedKey(ctx context.Context) (bool, error) {
	if e.Probe == nil {
		return false, nil
	}
	return e.Probe() != "", nil
}

func (e EnvSelector) OpenSelectKey(ctx context.Context) error { return nil }

var _ KeySelector = EnvSelector{}
