package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show consist totals, supported weights and contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := target.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printStatus(out, ws.name, ws.consist)

			fmt.Fprintln(out, "\nLocomotives:")
			if err := printLocomotives(out, ws.consist.Locomotives()); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nOrders:")
			return printOrders(out, ws.consist.Orders())
		},
	}

	target.register(cmd)
	return cmd
}
