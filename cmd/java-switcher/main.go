package main

import (
	"fmt"
	"os"

	"github.com/mrtuuro/java-switcher/internal/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
