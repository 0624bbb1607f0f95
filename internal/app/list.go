package app

import (
	"fmt"
	"io"

	"github.com/mrtuuro/java-switcher/internal/jdk"
)

// WriteList prints the 1-based numbered candidate list, marking the
// entry matching the configured default version name.
func WriteList(w io.Writer, candidates []jdk.Candidate, defaultName string) {
	for i, candidate := range candidates {
		marker := ""
		if defaultName != "" && candidate.Name == defaultName {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%d) %s%s\n", i+1, candidate.Name, marker)
	}
}
