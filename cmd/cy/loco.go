package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/consist"
)

func newLocoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loco",
		Aliases: []string{"locos"},
		Short:   "Manage the locomotives of a consist",
	}

	cmd.AddCommand(newLocoAddCmd())
	cmd.AddCommand(newLocoRemoveCmd())
	cmd.AddCommand(newLocoPowerCmd())
	cmd.AddCommand(newLocoListCmd())
	return cmd
}

func newLocoAddCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:   "add <kind>...",
		Short: "Append locomotives to the consist",
		Long:  "Appends one unit per argument. Kinds match a catalog key or name, case-insensitively (see \"cy catalog locos\").",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]catalog.LocomotiveID, 0, len(args))
			for _, a := range args {
				id, err := catalog.ParseLocomotive(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			ws, err := target.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				n := ws.consist.AddLocomotive(id)
				fmt.Fprintf(out, "Added unit %d: %s\n", n+1, id)
			}
			if err := ws.save(); err != nil {
				return err
			}
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	return cmd
}

func newLocoRemoveCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:     "remove <unit>",
		Aliases: []string{"rm"},
		Short:   "Remove a locomotive by unit number",
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
			count := len(ws.consist.Locomotives())
			removed, err := ws.consist.RemoveLocomotive(pos)
			if err != nil {
				return rowError("unit", pos, count, err)
			}
			if err := ws.save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed unit %d: %s\n", pos+1, removed.Kind.ID)
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	return cmd
}

func newLocoPowerCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:       "power <unit> [on|off|toggle]",
		Short:     "Switch a unit's traction power",
		Long:      "Powered-off units still count toward weight and length but contribute no tractive capacity. Defaults to toggle.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseRow(args[0])
			if err != nil {
				return err
			}
			mode := "toggle"
			if len(args) == 2 {
				mode = args[1]
			}
			if mode != "on" && mode != "off" && mode != "toggle" {
				return fmt.Errorf("power mode %q must be on, off or toggle", mode)
			}

			ws, err := target.open()
			if err != nil {
				return err
			}
			locos := ws.consist.Locomotives()
			if pos >= len(locos) {
				return rowError("unit", pos, len(locos), consist.ErrOutOfRange)
			}
			if !locos[pos].Kind.HasPower {
				return fmt.Errorf("unit %d (%s) has no traction power", pos+1, locos[pos].Kind.ID)
			}

			var powered bool
			switch mode {
			case "toggle":
				if powered, err = ws.consist.TogglePowered(pos); err != nil {
					return rowError("unit", pos, len(locos), err)
				}
			default:
				powered = mode == "on"
				if err := ws.consist.SetPowered(pos, powered); err != nil {
					return rowError("unit", pos, len(locos), err)
				}
			}
			if err := ws.save(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Unit %d power %s\n", pos+1, onOff(powered))
			printShortStatus(out, ws.consist)
			return nil
		},
	}

	target.register(cmd)
	return cmd
}

func newLocoListCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the consist's locomotives",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := target.open()
			if err != nil {
				return err
			}
			return printLocomotives(cmd.OutOrStdout(), ws.consist.Locomotives())
		},
	}

	target.register(cmd)
	return cmd
}

func printLocomotives(out io.Writer, locos []consist.Locomotive) error {
	if len(locos) == 0 {
		fmt.Fprintln(out, "No locomotives.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tKIND\tMASS (T)\tLENGTH (M)\tPOWER")
	for i, l := range locos {
		power := onOff(l.Powered)
		if !l.Kind.HasPower {
			power = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, l.Kind.ID, formatAmount(l.Kind.Mass), formatAmount(l.Kind.Length), power)
	}
	return w.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
