package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrtuuro/java-switcher/internal/config"
	"github.com/mrtuuro/java-switcher/internal/envstore"
	"github.com/mrtuuro/java-switcher/internal/jdk"
	"github.com/mrtuuro/java-switcher/internal/switcher"
)

var (
	ErrInvalidSelection     = errors.New("selection must be a number from the list")
	ErrNoSelectionNoDefault = errors.New("nothing selected and no usable default version configured")
)

// Service ties configuration, discovery and the environment store
// together for the command layer and the TUI.
type Service struct {
	Config config.Config
	Store  envstore.Store
	Scope  envstore.Scope
	Now    func() time.Time
}

func NewService(cfg config.Config, store envstore.Store, scope envstore.Scope) *Service {
	return &Service{
		Config: cfg,
		Store:  store,
		Scope:  scope,
		Now:    time.Now,
	}
}

func (s *Service) Candidates() ([]jdk.Candidate, error) {
	return jdk.Discover(s.Config.JavaBase)
}

// Select resolves one line of user input against the candidate list.
// Empty input picks the configured default version; anything else must
// be a 1-based index into the list.
func (s *Service) Select(input string, candidates []jdk.Candidate) (jdk.Candidate, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		if s.Config.DefaultVersion == "" {
			return jdk.Candidate{}, ErrNoSelectionNoDefault
		}
		candidate, ok := jdk.FindByName(candidates, s.Config.DefaultVersion)
		if !ok {
			return jdk.Candidate{}, fmt.Errorf("%w: default version %q is not installed", ErrNoSelectionNoDefault, s.Config.DefaultVersion)
		}
		return candidate, nil
	}

	index, err := strconv.Atoi(trimmed)
	if err != nil || index < 1 || index > len(candidates) {
		return jdk.Candidate{}, fmt.Errorf("%w: got %q, want 1-%d", ErrInvalidSelection, trimmed, len(candidates))
	}

	return candidates[index-1], nil
}

// Apply performs the switch for the chosen candidate: both environment
// writes plus the audit log when a log directory is configured.
func (s *Service) Apply(selected jdk.Candidate) (switcher.ApplyResult, error) {
	runner := switcher.Runner{
		Store:   s.Store,
		Scope:   s.Scope,
		BaseDir: s.Config.JavaBase,
		LogDir:  s.Config.LogPath,
		Now:     s.Now,
	}
	return runner.Apply(selected.Path)
}

// Current returns the home variable as seen by the environment store.
func (s *Service) Current() (string, error) {
	return s.Store.Get(s.Scope, switcher.HomeVariable)
}
