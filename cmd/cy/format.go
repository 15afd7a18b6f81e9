package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/consist"
)

// formatAmount prints a weight or length without trailing zeros (e.g. 42.5, 12).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens s to maxLen runes, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printShortStatus prints the one-line summary shown after each change.
func printShortStatus(out io.Writer, c *consist.Consist) {
	t, l := c.Totals(), c.Limits()
	fmt.Fprintf(out, "Weight %.2f T, length %.2f m, supports %d/%d/%d T (0%%/2%%/rain)\n",
		t.Weight, t.Length, l.ZeroGrade, l.TwoGrade, l.RainGrade)
}

// printStatus prints the full consist info block.
func printStatus(out io.Writer, name string, c *consist.Consist) {
	t, l := c.Totals(), c.Limits()
	fmt.Fprintf(out, "Consist %s\n", name)
	fmt.Fprintf(out, "- Units: %d, orders: %d\n", len(c.Locomotives()), len(c.Orders()))
	fmt.Fprintf(out, "- Total Weight: %.2f T\n", t.Weight)
	fmt.Fprintln(out, "- Supported Weights:")
	for _, cond := range catalog.GradeConditions {
		mark := ""
		if c.Overloaded(cond) {
			mark = "  OVERLOADED"
		}
		fmt.Fprintf(out, "  - %s: %d T%s\n", cond, l.For(cond), mark)
	}
	fmt.Fprintf(out, "- Total Length: %.2fm\n", t.Length)
}
