package main

import (
	"os"

	"github.com/propertyhub-dev/propertyhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
