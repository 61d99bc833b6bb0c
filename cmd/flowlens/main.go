// main is the entry point for the flowlens CLI.
package main

import (
	"github.com/agilekit/flowlens/cmd"
	"github.com/agilekit/flowlens/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("flowlens failed", err)
	}
}
