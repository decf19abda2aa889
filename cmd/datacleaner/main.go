package main

import (
	"os"

	"github.com/wdm0006/datacleaner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
