package driver

import (
	"fmt"
	"strings"

	"dlctl/pkg/driver"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "which <driver>",
			Short: "Print the provider that would be used for a driver (e.g. clipboard)",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				name := args[0]
				if !strings.Contains(name, ".") {
					name += ".Driver"
				}
				id, err := driver.Selected(c.Context(), name)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), id)
				return nil
			},
		})
	})
}
