package main

import (
	"fmt"
	"os"

	"github.com/optivent/gsd-kimi-cli/cmd/gsd-kimi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
