// Package main is the entrypoint for the mr-review CLI.
// It delegates all command handling to the cmd package.
package main

import (
	"os"

	"github.com/Int-Type/gitlab-mr-auto-review/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
