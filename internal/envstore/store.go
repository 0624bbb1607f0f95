package envstore

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Scope identifies which environment variable store a read or write
// targets. Machine and user scopes are persistent and visible to new
// processes only; process scope affects the current process.
type Scope string

const (
	ScopeMachine Scope = "machine"
	ScopeUser    Scope = "user"
	ScopeProcess Scope = "process"
)

var ErrScopeUnsupported = errors.New("environment scope not supported on this platform")

func ParseScope(raw string) (Scope, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	switch trimmed {
	case "", string(ScopeMachine):
		return ScopeMachine, nil
	case string(ScopeUser):
		return ScopeUser, nil
	case string(ScopeProcess):
		return ScopeProcess, nil
	default:
		return "", fmt.Errorf("invalid scope %q", raw)
	}
}

// Store reads and writes named environment variables in a given scope.
// Get returns the empty string for a variable that is not set.
type Store interface {
	Get(scope Scope, name string) (string, error)
	Set(scope Scope, name string, value string) error
}

// Memory is an in-memory Store. Tests use it to exercise the switch flow
// without touching real system state.
type Memory struct {
	mu   sync.Mutex
	vars map[Scope]map[string]string
}

func NewMemory() *Memory {
	return &Memory{vars: map[Scope]map[string]string{}}
}

func (m *Memory) Get(scope Scope, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.vars[scope][name], nil
}

func (m *Memory) Set(scope Scope, name string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.vars[scope] == nil {
		m.vars[scope] = map[string]string{}
	}
	m.vars[scope][name] = value
	return nil
}
