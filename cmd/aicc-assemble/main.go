// Package main provides the CLI entrypoint for aicc-assemble.
//
// aicc-assemble reconciles AICC course tables into one course manifest:
//   - Joins units, descriptors and course structure rows by system id
//   - Resolves per-unit behavior against course-wide defaults
//   - Normalizes scores, durations, action lists and flags
//   - Finds the root unit and its launch URL
//
// Tables are read from YAML fixtures (see internal/tables).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Args[1:]).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
