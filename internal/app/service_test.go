package app

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mrtuuro/java-switcher/internal/config"
	"github.com/mrtuuro/java-switcher/internal/envstore"
	"github.com/mrtuuro/java-switcher/internal/jdk"
	"github.com/mrtuuro/java-switcher/internal/switcher"
)

func testCandidates() []jdk.Candidate {
	return []jdk.Candidate{
		{Name: "11", Path: `C:\Java\11`},
		{Name: "17", Path: `C:\Java\17`},
		{Name: "8", Path: `C:\Java\8`},
	}
}

func TestSelect_ByIndex(t *testing.T) {
	t.Parallel()

	svc := NewService(config.Config{JavaBase: `C:\Java`}, envstore.NewMemory(), envstore.ScopeMachine)
	candidates := testCandidates()

	for i, candidate := range candidates {
		selected, err := svc.Select(" "+strconv.Itoa(i+1)+"\n", candidates)
		if err != nil {
			t.Fatalf("Select index %d: %v", i+1, err)
		}
		if selected.Path != candidate.Path {
			t.Fatalf("expected %s for index %d, got %s", candidate.Path, i+1, selected.Path)
		}
	}
}

func TestSelect_RejectsOutOfRangeAndGarbage(t *testing.T) {
	t.Parallel()

	svc := NewService(config.Config{JavaBase: `C:\Java`}, envstore.NewMemory(), envstore.ScopeMachine)
	candidates := testCandidates()

	for _, input := range []string{"0", "4", "abc", "-1", "1.5"} {
		_, err := svc.Select(input, candidates)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection for %q, got %v", input, err)
		}
	}
}

func TestSelect_EmptyInputUsesDefault(t *testing.T) {
	t.Parallel()

	svc := NewService(config.Config{JavaBase: `C:\Java`, DefaultVersion: "17"}, envstore.NewMemory(), envstore.ScopeMachine)

	selected, err := svc.Select("\n", testCandidates())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if selected.Path != `C:\Java\17` {
		t.Fatalf("expected default C:\\Java\\17, got %s", selected.Path)
	}
}

func TestSelect_EmptyInputWithoutDefault(t *testing.T) {
	t.Parallel()

	svc := NewService(config.Config{JavaBase: `C:\Java`}, envstore.NewMemory(), envstore.ScopeMachine)

	_, err := svc.Select("", testCandidates())
	if !errors.Is(err, ErrNoSelectionNoDefault) {
		t.Fatalf("expected ErrNoSelectionNoDefault, got %v", err)
	}
}

func TestSelect_DefaultNotAmongCandidates(t *testing.T) {
	t.Parallel()

	svc := NewService(config.Config{JavaBase: `C:\Java`, DefaultVersion: "21"}, envstore.NewMemory(), envstore.ScopeMachine)

	_, err := svc.Select("", testCandidates())
	if !errors.Is(err, ErrNoSelectionNoDefault) {
		t.Fatalf("expected ErrNoSelectionNoDefault, got %v", err)
	}
}

func TestApply_WritesBothVariables(t *testing.T) {
	t.Parallel()

	store := envstore.NewMemory()
	if err := store.Set(envstore.ScopeMachine, switcher.PathVariable, `C:\Java\11\bin;C:\Windows`); err != nil {
		t.Fatalf("seed path: %v", err)
	}

	svc := NewService(config.Config{JavaBase: `C:\Java`}, store, envstore.ScopeMachine)

	result, err := svc.Apply(jdk.Candidate{Name: "17", Path: `C:\Java\17`})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if result.Stage != switcher.StageDone {
		t.Fatalf("expected stage %s, got %s", switcher.StageDone, result.Stage)
	}

	home, _ := store.Get(envstore.ScopeMachine, switcher.HomeVariable)
	if home != `C:\Java\17` {
		t.Fatalf("expected home C:\\Java\\17, got %q", home)
	}

	path, _ := store.Get(envstore.ScopeMachine, switcher.PathVariable)
	if path != `C:\Java\17\bin;C:\Windows` {
		t.Fatalf("unexpected path %q", path)
	}
}
