package llm

import (
	"encoding/json"
	"fmt"
)

// ErrUnauthenticated indicates the provider rejected the credential
// (401, UNAUTHENTICATED, unsupported-key markers).
type ErrUnauthenticated struct {
	Err error
}

func (e *ErrUnauthenticated) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication rejected by provider: %v", e.Err)
	}
	return "authentication rejected by provider"
}

func (e *ErrUnauthenticated) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the model returned no text at all.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "empty response from model"
}

// ErrProviderUnavailable indicates the provider is down, unreachable,
// or throttling.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
