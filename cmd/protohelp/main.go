package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phpshell/protoreg/internal/cli"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		if !errors.Is(err, cli.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
