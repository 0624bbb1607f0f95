package jdk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var (
	ErrBaseDirNotFound = errors.New("base installation directory not found")
	ErrNoInstallations = errors.New("no JDK installations found")
)

// Candidate is one installed JDK under the base directory. Name is the
// directory name and doubles as the version label shown to the user.
type Candidate struct {
	Name string
	Path string
}

// Discover enumerates the immediate subdirectories of baseDir, sorted
// lexicographically by name. Files and nested directories are ignored.
func Discover(baseDir string) ([]Candidate, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBaseDirNotFound, baseDir)
		}
		return nil, fmt.Errorf("read base directory %s: %w", baseDir, err)
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidates = append(candidates, Candidate{
			Name: entry.Name(),
			Path: filepath.Join(baseDir, entry.Name()),
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoInstallations, baseDir)
	}

	sort.Slice(candidates, func(i int, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})

	return candidates, nil
}

func FindByName(candidates []Candidate, name string) (Candidate, bool) {
	for _, candidate := range candidates {
		if candidate.Name == name {
			return candidate, true
		}
	}
	return Candidate{}, false
}
