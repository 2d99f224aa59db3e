// Package main provides the quarry CLI entrypoint.
package main

import (
	"os"

	"github.com/quarryhq/quarry/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
