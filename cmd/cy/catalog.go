package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/consistyard/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in locomotive and station catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "locos",
		Short: "List locomotive and rolling-stock kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tMASS (T)\tLENGTH (M)\t0%\t2%\tRAIN\tPOWER")
			for _, id := range catalog.LocomotiveIDs() {
				k := catalog.Locomotive(id)
				power := "yes"
				if !k.HasPower {
					power = "no"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					id.Key(), id, formatAmount(k.Mass), formatAmount(k.Length),
					k.ZeroGrade, k.TwoGrade, k.RainGrade, power)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stations",
		Short: "List stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ABBREV\tKEY\tNAME")
			for _, id := range catalog.StationIDs() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", id.Abbrev(), id.Key(), id)
			}
			return w.Flush()
		},
	})
	return cmd
}
