package main

import (
	"os"

	"github.com/rexlib/rex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
