// Package main is copper's command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/sebastian-j-ibanez/copper-sub000/cmd/copper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
