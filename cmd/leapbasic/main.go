// Package main provides the leapbasic command-line interpreter.
package main

import (
	"os"

	"github.com/leapstack-labs/leapbasic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
