// Package main provides the analystdemo command.
package main

import (
	"os"

	"github.com/leapstack-labs/analystdemo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
