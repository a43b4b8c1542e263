package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solution files in --solutions-dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTOOLS\tDISCS\tMOVES\tPATH")
			for _, m := range list {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", m.Name, m.Stools, m.Discs, m.Moves, m.Path)
			}
			return tw.Flush()
		},
	}
}
