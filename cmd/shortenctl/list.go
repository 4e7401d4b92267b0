package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sundayezeilo/linkshort/internal/shortener"
)

func newListCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent links, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withService(cmd.Context(), func(svc shortener.Service) error {
				links, err := svc.ListRecent(cmd.Context(), limit)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tSHORT\tCLICKS\tTARGET")
				for _, l := range links {
					_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", l.ID, l.Short, l.Clicks, l.Target)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", shortener.DefaultListLimit, "maximum number of links")
	return cmd
}
