// Package main is the seqalign command line entry point.
package main

import (
	"os"

	"github.com/katalvlaran/seqalign/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Stdout, os.Stderr))
}
