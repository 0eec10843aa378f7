package main

import (
	"dlctl/cmd/dlctl/copylatest"
	"dlctl/cmd/dlctl/driver"
	"dlctl/cmd/dlctl/empty"
	"dlctl/cmd/dlctl/list"
	"dlctl/cmd/dlctl/pick"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(
			copylatest.GetCommand(),
			empty.GetCommand(),
			list.GetCommand(),
			pick.GetCommand(),
			driver.GetCommand(),
		)
	})
}
