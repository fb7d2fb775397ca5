package main

import (
	"fmt"
	"os"

	"github.com/replkit/replctl/internal/cli"
	"github.com/replkit/replctl/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "replctl: %v\n", err)
		os.Exit(1)
	}
}
