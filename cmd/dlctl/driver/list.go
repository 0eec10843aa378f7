package driver

import (
	"fmt"
	"text/tabwriter"

	"dlctl/pkg/driver"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(c *cobra.Command) {
		c.AddCommand(&cobra.Command{
			Use:   "list",
			Short: "List registered providers and whether they can run here",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "DRIVER\tPROVIDER\tWEIGHT\tSTATUS")
				for _, s := range driver.List(c.Context()) {
					status := "ok"
					if s.Err != nil {
						status = s.Err.Error()
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Driver, s.ID, s.Weight, status)
				}
				return w.Flush()
			},
		})
	})
}
