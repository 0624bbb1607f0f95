//go:build !windows

package envstore

import (
	"fmt"
	"os"
)

// Fallback serves platforms without a persistent machine-wide variable
// store. Process scope maps onto the process environment; machine and
// user scope fail loudly instead of pretending to persist anything.
type Fallback struct{}

// NewDefault returns the store for this platform.
func NewDefault() Store {
	return Fallback{}
}

func (Fallback) Get(scope Scope, name string) (string, error) {
	if scope == ScopeProcess {
		return os.Getenv(name), nil
	}
	return "", fmt.Errorf("%w: %s", ErrScopeUnsupported, scope)
}

func (Fallback) Set(scope Scope, name string, value string) error {
	if scope == ScopeProcess {
		return os.Setenv(name, value)
	}
	return fmt.Errorf("%w: %s", ErrScopeUnsupported, scope)
}
