package quizgen

import "strings"

// CredentialsRemediation is the user-facing hint when no API key is
// configured.
const CredentialsRemediation = "API Key is missing. Please select your Google API Key."

// AuthRemediation is the user-facing hint attached to normalized
// authentication failures.
const AuthRemediation = "Authentication failed. Please re-select your Google API Key " +
	"and ensure your project has the Generative Language API enabled."

// ErrCredentialsMissing indicates no usable API key could be resolved
// from the environment.
type ErrCredentialsMissing struct{}

func (e *ErrCredentialsMissing) Error() string {
	return CredentialsRemediation
}

// ErrAuthFailed wraps any authentication-shaped provider failure
// (401, UNAUTHENTICATED, missing-credentials or unsupported-key
// markers) into a single error carrying the remediation message.
type ErrAuthFailed struct {
	Err error
}

func (e *ErrAuthFailed) Error() string {
	return AuthRemediation
}

func (e *ErrAuthFailed) Unwrap() error { return e.Err }

// authMarkers are substrings that identify authentication failures in
// provider error text, regardless of which SDK produced them.
var authMarkers = []string{
	"401",
	"UNAUTHENTICATED",
	"CREDENTIALS_MISSING",
	"API keys are not supported",
}

// looksLikeAuthError reports whether an error message carries a known
// authentication-failure marker.
func looksLikeAuthError(msg string) bool {
	for _, marker := range authMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
