// Package main is the entry point for the streamflix application.
package main

import (
	"github.com/samber/lo"
	"github.com/streamflix-cli/streamflix/cmd"
	"github.com/streamflix-cli/streamflix/config"
	"github.com/streamflix-cli/streamflix/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
