//go:build windows

package envstore

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	machineEnvKeyPath = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	userEnvKeyPath    = `Environment`
)

// System persists machine and user scope variables through the Windows
// registry. Machine scope writes require an elevated process; permission
// failures surface as the wrapped registry error.
type System struct{}

// NewDefault returns the store for this platform.
func NewDefault() Store {
	return System{}
}

func environmentKey(scope Scope) (registry.Key, string, error) {
	switch scope {
	case ScopeMachine:
		return registry.LOCAL_MACHINE, machineEnvKeyPath, nil
	case ScopeUser:
		return registry.CURRENT_USER, userEnvKeyPath, nil
	default:
		return 0, "", fmt.Errorf("%w: %s", ErrScopeUnsupported, scope)
	}
}

func (System) Get(scope Scope, name string) (string, error) {
	if scope == ScopeProcess {
		return os.Getenv(name), nil
	}

	root, keyPath, err := environmentKey(scope)
	if err != nil {
		return "", err
	}

	key, err := registry.OpenKey(root, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open %s environment key: %w", scope, err)
	}
	defer func() {
		_ = key.Close()
	}()

	value, _, err := key.GetStringValue(name)
	if err != nil {
		if err == registry.ErrNotExist {
			return "", nil
		}
		return "", fmt.Errorf("read %s variable %s: %w", scope, name, err)
	}

	return value, nil
}

func (System) Set(scope Scope, name string, value string) error {
	if scope == ScopeProcess {
		return os.Setenv(name, value)
	}

	root, keyPath, err := environmentKey(scope)
	if err != nil {
		return err
	}

	key, err := registry.OpenKey(root, keyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open %s environment key for writing: %w", scope, err)
	}
	defer func() {
		_ = key.Close()
	}()

	// Path-style values stay REG_EXPAND_SZ so embedded %VAR% references
	// keep expanding for new processes.
	if strings.EqualFold(name, "Path") || strings.Contains(value, "%") {
		err = key.SetExpandStringValue(name, value)
	} else {
		err = key.SetStringValue(name, value)
	}
	if err != nil {
		return fmt.Errorf("write %s variable %s: %w", scope, name, err)
	}

	broadcastEnvironmentChange()
	return nil
}

// broadcastEnvironmentChange notifies running shells that the environment
// block changed. Best effort: new processes pick up the registry values
// regardless of whether any window handles the message.
func broadcastEnvironmentChange() {
	const (
		hwndBroadcast   = 0xffff
		wmSettingChange = 0x001a
		smtoAbortIfHung = 0x0002
	)

	env, err := windows.UTF16PtrFromString("Environment")
	if err != nil {
		return
	}

	user32 := windows.NewLazySystemDLL("user32.dll")
	sendMessageTimeout := user32.NewProc("SendMessageTimeoutW")
	_, _, _ = sendMessageTimeout.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(env)),
		smtoAbortIfHung,
		5000,
		0,
	)
}
