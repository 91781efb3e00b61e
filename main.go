// Package main is the entry point for the themecfg application.
package main

import (
	"github.com/montre/themecfg/cmd"
	"github.com/montre/themecfg/config"
	"github.com/montre/themecfg/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
