// main is the entrypoint for the syncflow CLI.
package main

import (
	"github.com/syncflow/syncflow/cmd"
	"github.com/syncflow/syncflow/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run syncflow", err)
	}
}
