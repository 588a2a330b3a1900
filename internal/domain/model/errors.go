package model

import (
	"errors"
	"fmt"
)

// ErrNotYetAvailable reports a reference to a resource that has not been
// published in the current boot. Callers degrade to a placeholder value
// instead of failing.
var ErrNotYetAvailable = errors.New("resource not yet available")

// ConfigurationError is a fatal per-app error: missing or unreadable seed,
// malformed manifest, malformed persisted state. Resolution of the affected
// app is aborted without a partial publish.
type ConfigurationError struct {
	AppID  string
	Reason string
	Err    error
}

// NewConfigurationError creates a configuration error for the given app.
func NewConfigurationError(appID string, reason string, err error) *ConfigurationError {
	return &ConfigurationError{AppID: appID, Reason: reason, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("app %s: %s: %v", e.AppID, e.Reason, e.Err)
	}
	return fmt.Sprintf("app %s: %s", e.AppID, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConflictError reports a registry publish that contradicts an earlier one.
// Either the same key was published with a different value, or an address or
// host port value is already claimed under another key. Both indicate a
// platform-wide misconfiguration and abort the resolution pass.
type ConflictError struct {
	Key       string
	Value     string
	PrevKey   string // set when another key already holds Value
	PrevValue string // set when Key already holds a different value
}

func (e *ConflictError) Error() string {
	if e.PrevKey != "" {
		return fmt.Sprintf("conflict: value %q for %s is already claimed by %s", e.Value, e.Key, e.PrevKey)
	}
	return fmt.Sprintf("conflict: %s already holds %q, refusing %q", e.Key, e.PrevValue, e.Value)
}
