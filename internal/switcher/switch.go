package switcher

import (
	"fmt"
	"time"

	"github.com/mrtuuro/java-switcher/internal/envstore"
)

const (
	// HomeVariable is read by downstream tools to locate the active JDK.
	HomeVariable = "JAVA_HOME"
	// PathVariable is the separator-delimited executable search list.
	PathVariable = "Path"
)

// SwitchResult reports which of the two environment writes landed. The
// writes are independent and never rolled back, so HomeSet=true with
// PathSet=false means the machine is in a mixed state the caller must
// surface to the user.
type SwitchResult struct {
	Selection string
	OldHome   string
	HomeSet   bool
	PathSet   bool
}

// Switch sets the home variable to selection, then rewrites the search
// path so selection's bin directory comes first and no other bin
// directory under baseDir remains.
func Switch(store envstore.Store, scope envstore.Scope, baseDir string, selection string) (SwitchResult, error) {
	result := SwitchResult{Selection: selection}

	if oldHome, err := store.Get(scope, HomeVariable); err == nil {
		result.OldHome = oldHome
	}

	if err := store.Set(scope, HomeVariable, selection); err != nil {
		return result, fmt.Errorf("set %s: %w", HomeVariable, err)
	}
	result.HomeSet = true

	currentPath, err := store.Get(scope, PathVariable)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", PathVariable, err)
	}

	rewritten := RewriteSearchPath(currentPath, baseDir, selection)
	if err := store.Set(scope, PathVariable, rewritten); err != nil {
		return result, fmt.Errorf("update %s: %w", PathVariable, err)
	}
	result.PathSet = true

	return result, nil
}

// Runner applies a selection end to end: the two environment writes plus
// the optional audit-log append.
type Runner struct {
	Store   envstore.Store
	Scope   envstore.Scope
	BaseDir string
	LogDir  string
	Now     func() time.Time
}

// ApplyResult carries the switch outcome, the stage the run reached, and
// a non-fatal audit-log warning when the log write failed.
type ApplyResult struct {
	Switch     SwitchResult
	Stage      Stage
	LogWarning error
}

func (r Runner) Apply(selection string) (ApplyResult, error) {
	result := ApplyResult{Stage: StageSelected}

	switched, err := Switch(r.Store, r.Scope, r.BaseDir, selection)
	result.Switch = switched
	if err != nil {
		if switched.HomeSet {
			result.Stage = StageHomeSet
		}
		return result, err
	}
	result.Stage = StagePathUpdated

	if r.LogDir != "" {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		if logErr := AppendAuditLog(r.LogDir, selection, now()); logErr != nil {
			// Non-fatal: the switch already happened and matters more
			// than the record of it.
			result.LogWarning = logErr
		} else {
			result.Stage = StageLogged
		}
	}

	if result.LogWarning == nil {
		result.Stage = StageDone
	}
	return result, nil
}
