// Package main provides the oids command.
package main

import (
	"os"

	"github.com/oidtool/oids/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
