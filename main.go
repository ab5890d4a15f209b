package main

import (
	"os"

	"github.com/grendel/hilbert/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
