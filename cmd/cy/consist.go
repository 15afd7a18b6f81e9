package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/consistyard/internal/store"
)

func newConsistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consist",
		Short: "List and delete stored consists",
	}

	cmd.AddCommand(newConsistListCmd())
	cmd.AddCommand(newConsistDeleteCmd())
	return cmd
}

func newConsistListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored consists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			sums, err := store.List(gormDB)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sums) == 0 {
				fmt.Fprintln(out, "No consists.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tUNITS\tORDERS\tWEIGHT (T)\tLENGTH (M)\t0%\t2%\tRAIN\tUPDATED")
			for _, s := range sums {
				fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\t%d\t%d\t%d\t%s\n",
					truncate(s.Name, 24), s.Locomotives, s.Orders, s.Totals.Weight, s.Totals.Length,
					s.Limits.ZeroGrade, s.Limits.TwoGrade, s.Limits.RainGrade,
					s.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Consistyard config file")
	return cmd
}

func newConsistDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored consist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := store.Delete(gormDB, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted consist %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Consistyard config file")
	return cmd
}
