package main

import (
	"os"

	"github.com/Pure-Company/pureext/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
