package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/order"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Aliases: []string{"orders"},
		Short:   "Manage the cargo orders of a consist",
	}

	cmd.AddCommand(newOrderAddCmd())
	cmd.AddCommand(newOrderEditCmd())
	cmd.AddCommand(newOrderDeleteCmd())
	cmd.AddCommand(newOrderMoveCmd("up", "Move an order one row up"))
	cmd.AddCommand(newOrderMoveCmd("down", "Move an order one row down"))
	cmd.AddCommand(newOrderListCmd())
	return cmd
}

// orderFlags are the form fields shared by add and edit.
type orderFlags struct {
	name         string
	weight       string
	length       string
	pickup       string
	pickupTrack  string
	dropoff      string
	dropoffTrack string
}

func (f *orderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "order name")
	cmd.Flags().StringVar(&f.weight, "weight", "", "cargo weight in tonnes")
	cmd.Flags().StringVar(&f.length, "length", "", "cargo length in metres")
	cmd.Flags().StringVar(&f.pickup, "pickup", "", "pickup station (key, name or abbreviation)")
	cmd.Flags().StringVar(&f.pickupTrack, "pickup-track", "", "pickup track")
	cmd.Flags().StringVar(&f.dropoff, "dropoff", "", "dropoff station (key, name or abbreviation)")
	cmd.Flags().StringVar(&f.dropoffTrack, "dropoff-track", "", "dropoff track")
}

// apply overwrites the draft fields whose flags were set on cmd.
func (f *orderFlags) apply(cmd *cobra.Command, d *order.Draft) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		d.Name = f.name
	}
	if changed("weight") {
		d.Weight = f.weight
	}
	if changed("length") {
		d.Length = f.length
	}
	if changed("pickup") {
		id, err := catalog.ParseStation(f.pickup)
		if err != nil {
			return fmt.Errorf("pickup: %w", err)
		}
		d.Pickup = id
	}
	if changed("pickup-track") {
		d.PickupTrack = f.pickupTrack
	}
	if changed("dropoff") {
		id, err := catalog.ParseStation(f.dropoff)
		if err != nil {
			return fmt.Errorf("dropoff: %w", err)
		}
		d.Dropoff = id
	}
	if changed("dropoff-track") {
		d.DropoffTrack = f.dropoffTrack
	}
	return nil
}

func newOrderAddCmd() *cobra.Command {
	var (
		target targetFlags
		form   orderFlags
		at     int
		above  int
		below  int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cargo order",
		Long: `Adds an order at the end of the list, or relative to an existing row.

Rows are numbered from 1. --at R inserts at row R, appending when R is past the
end. --above R places the order at row R-1 (row 1 when R is 1). --below R
places it at row R+1. Both require row R to exist.
Pickup defaults to the steel mill and dropoff to the harbor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("at") && at < 1 {
				return fmt.Errorf("row %d must be a positive number", at)
			}
			d := order.NewDraft()
			if err := form.apply(cmd, &d); err != nil {
				return err
			}
			o, err := d.Order()
			if err != nil {
				return err
			}

			ws, err := target.open()
			if err != nil {
				return err
			}
			count := len(ws.consist.Orders())
			var pos int
			switch {
			case cmd.Flags().Changed("at"):
				pos = ws.consist.InsertOrder(at-1, o)
			case cmd.Flags().Changed("above"):
				if pos, err = ws.consist.AddOrderAbove(above-1, o); err != nil {
					return rowError("row", above-1, count, err)
				}
			case cmd.Flags().Changed("below"):
				if pos, err = ws.consist.AddOrderBelow(below-1, o); err != nil {
					return rowError("row", below-1, count, err)
				}
			default:
				pos = ws.consist.AddOrder(o)
			}
			if err := ws.save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added order %q at row %d\n", o.Name, pos+1)
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	form.register(cmd)
	cmd.Flags().IntVar(&at, "at", 0, "insert at this row")
	cmd.Flags().IntVar(&above, "above", 0, "insert above this row")
	cmd.Flags().IntVar(&below, "below", 0, "insert below this row")
	cmd.MarkFlagsMutuallyExclusive("at", "above", "below")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("length")
	return cmd
}

func newOrderEditCmd() *cobra.Command {
	var (
		target targetFlags
		form   orderFlags
	)

	cmd := &cobra.Command{
		Use:   "edit <row>",
		Short: "Edit a cargo order",
		Long:  "Replaces the order at row with its current values overridden by the given flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseRow(args[0])
			if err != nil {
				return err
			}
			ws, err := target.open()
			if err != nil {
				return err
			}
			count := len(ws.consist.Orders())
			current, err := ws.consist.Order(pos)
			if err != nil {
				return rowError("row", pos, count, err)
			}

			d := order.DraftFrom(current)
			if err := form.apply(cmd, &d); err != nil {
				return err
			}
			o, err := d.Order()
			if err != nil {
				return err
			}
			if err := ws.consist.EditOrder(pos, o); err != nil {
				return rowError("row", pos, count, err)
			}
			if err := ws.save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated row %d\n", pos+1)
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	form.register(cmd)
	return cmd
}

func newOrderDeleteCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:     "delete <row>",
		Aliases: []string{"rm"},
		Short:   "Delete a cargo order",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseRow(args[0])
			if err != nil {
				return err
			}
			ws, err := target.open()
			if err != nil {
				return err
			}
			count := len(ws.consist.Orders())
			removed, err := ws.consist.DeleteOrder(pos)
			if err != nil {
				return rowError("row", pos, count, err)
			}
			if err := ws.save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Deleted order %q from row %d\n", removed.Name, pos+1)
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	return cmd
}

func newOrderMoveCmd(direction, short string) *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:   direction + " <row>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseRow(args[0])
			if err != nil {
				return err
			}
			ws, err := target.open()
			if err != nil {
				return err
			}
			count := len(ws.consist.Orders())
			move := ws.consist.MoveOrderUp
			if direction == "down" {
				move = ws.consist.MoveOrderDown
			}
			if err := move(pos); err != nil {
				return rowError("row", pos, count, err)
			}
			if err := ws.save(); err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), ws.consist.Orders())
		},
	}

	target.register(cmd)
	return cmd
}

func newOrderListCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the consist's cargo orders",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := target.open()
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), ws.consist.Orders())
		},
	}

	target.register(cmd)
	return cmd
}

func printOrders(out io.Writer, orders []order.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tNAME\tWEIGHT (T)\tLENGTH (M)\tPICKUP\tTRACK\tDROPOFF\tTRACK")
	for i, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, dash(truncate(o.Name, 32)), formatAmount(o.Weight), formatAmount(o.Length),
			o.Pickup.Abbrev(), dash(o.PickupTrack), o.Dropoff.Abbrev(), dash(o.DropoffTrack))
	}
	return w.Flush()
}
