// Package main is the entry point for the keypadchain CLI.
package main

import (
	"os"

	"github.com/katalvlaran/keypadchain/cmd/keypadchain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
