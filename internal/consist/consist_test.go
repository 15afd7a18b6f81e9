package consist

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/order"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestDE2Scenario(t *testing.T) {
	c := New()
	i := c.AddLocomotive(catalog.DE2)

	tot := c.Totals()
	if !approx(tot.Weight, 38.0) || !approx(tot.Length, 7.6) {
		t.Errorf("totals = %+v, want weight 38.0 length 7.6", tot)
	}
	if want := (Limits{1200, 300, 250}); c.Limits() != want {
		t.Errorf("limits = %+v, want %+v", c.Limits(), want)
	}

	on, err := c.TogglePowered(i)
	if err != nil {
		t.Fatalf("TogglePowered: %v", err)
	}
	if on {
		t.Error("TogglePowered should report powered off")
	}
	if c.Limits() != (Limits{}) {
		t.Errorf("limits after power off = %+v, want zero", c.Limits())
	}
	if c.Totals() != tot {
		t.Errorf("totals changed on power off: %+v, want %+v", c.Totals(), tot)
	}
}

func TestOrderDeleteScenario(t *testing.T) {
	c := New()
	c.AddOrder(order.Order{Name: "A", Weight: 10, Length: 5})
	c.AddOrder(order.Order{Name: "B", Weight: 20, Length: 8})
	c.AddOrder(order.Order{Name: "C", Weight: 5, Length: 2})
	if !approx(c.Totals().Weight, 35) || !approx(c.Totals().Length, 15) {
		t.Errorf("totals = %+v, want 35/15", c.Totals())
	}

	if _, err := c.DeleteOrder(1); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if !approx(c.Totals().Weight, 15) || !approx(c.Totals().Length, 7) {
		t.Errorf("totals = %+v, want 15/7", c.Totals())
	}

	c.InsertOrder(0, order.Order{Name: "D", Weight: 1, Length: 1})
	var got []string
	for _, o := range c.Orders() {
		got = append(got, o.Name)
	}
	if diff := cmp.Diff([]string{"D", "A", "C"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestComputeLimits(t *testing.T) {
	tests := []struct {
		name  string
		locos []Locomotive
		want  Limits
	}{
		{"empty", nil, Limits{}},
		{"single DE6", []Locomotive{NewLocomotive(catalog.DE6)}, Limits{3000, 1200, 1000}},
		{
			"DE6 with slug and caboose",
			[]Locomotive{NewLocomotive(catalog.DE6), NewLocomotive(catalog.DE6Slug), NewLocomotive(catalog.Caboose)},
			Limits{3000, 1200, 1000},
		},
		{
			"powered off unit excluded",
			[]Locomotive{NewLocomotive(catalog.DM3), {Kind: catalog.Locomotive(catalog.DH4), Powered: false}},
			Limits{2000, 500, 400},
		},
		{
			"unpowered kind flagged powered still excluded",
			[]Locomotive{{Kind: catalog.Locomotive(catalog.Caboose), Powered: true}},
			Limits{},
		},
		{
			"double header",
			[]Locomotive{NewLocomotive(catalog.S282), NewLocomotive(catalog.BE2)},
			Limits{3800, 1100, 850},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeLimits(tt.locos); got != tt.want {
				t.Errorf("ComputeLimits = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeTotals_IgnoresPower(t *testing.T) {
	locos := []Locomotive{
		{Kind: catalog.Locomotive(catalog.DE2), Powered: false},
		NewLocomotive(catalog.Caboose),
	}
	orders := []order.Order{{Weight: 40, Length: 12.5}}
	got := ComputeTotals(locos, orders)
	if !approx(got.Weight, 38+22+40) {
		t.Errorf("Weight = %v, want 100", got.Weight)
	}
	if !approx(got.Length, 7.6+13.2+12.5) {
		t.Errorf("Length = %v, want 33.3", got.Length)
	}
}

func TestRemoveLocomotive(t *testing.T) {
	c := New()
	c.AddLocomotive(catalog.DE2)
	c.AddLocomotive(catalog.S060)

	l, err := c.RemoveLocomotive(0)
	if err != nil {
		t.Fatalf("RemoveLocomotive: %v", err)
	}
	if l.Kind.ID != catalog.DE2 {
		t.Errorf("removed %v, want DE2", l.Kind.ID)
	}
	if want := (Limits{1500, 400, 300}); c.Limits() != want {
		t.Errorf("limits = %+v, want %+v", c.Limits(), want)
	}
	if !approx(c.Totals().Weight, 50.7) {
		t.Errorf("Weight = %v, want 50.7", c.Totals().Weight)
	}

	if _, err := c.RemoveLocomotive(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveLocomotive(1) err = %v, want ErrOutOfRange", err)
	}
	if err := c.SetPowered(-1, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetPowered(-1) err = %v, want ErrOutOfRange", err)
	}
}

func TestSetPowered_RemovesExactContribution(t *testing.T) {
	c := New()
	c.AddLocomotive(catalog.DE6)
	c.AddLocomotive(catalog.DH4)
	before := c.Limits()

	if err := c.SetPowered(1, false); err != nil {
		t.Fatalf("SetPowered: %v", err)
	}
	dh4 := catalog.Locomotive(catalog.DH4)
	for _, cond := range catalog.GradeConditions {
		if got, want := c.Limits().For(cond), before.For(cond)-dh4.Capacity(cond); got != want {
			t.Errorf("%v: limit = %d, want %d", cond, got, want)
		}
	}
}

func TestOverloaded(t *testing.T) {
	c := New()
	c.AddLocomotive(catalog.BE2)
	c.AddOrder(order.Order{Weight: 80})
	if c.Overloaded(catalog.ZeroGrade) {
		t.Error("92 t should be within 800 t flat rating")
	}
	if !c.Overloaded(catalog.RainGrade) {
		t.Error("92 t should exceed 50 t rain rating")
	}
}

func TestRestore_RecomputesTotals(t *testing.T) {
	locos := []Locomotive{NewLocomotive(catalog.DE2), {Kind: catalog.Locomotive(catalog.DM3), Powered: false}}
	orders := []order.Order{{Name: "x", Weight: 3, Length: 4}}
	c := Restore(locos, orders)

	if !approx(c.Totals().Weight, 38+52+3) {
		t.Errorf("Weight = %v", c.Totals().Weight)
	}
	if want := (Limits{1200, 300, 250}); c.Limits() != want {
		t.Errorf("limits = %+v, want %+v", c.Limits(), want)
	}

	locos[0].Powered = false
	if c.Limits() != (Limits{1200, 300, 250}) || !c.Locomotives()[0].Powered {
		t.Error("Restore should copy the locomotive slice")
	}
}

func TestRestore_NilKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Restore with a nil Kind should panic")
		}
	}()
	Restore([]Locomotive{NewLocomotive(catalog.DE2), {}}, nil)
}

func TestZeroValueConsist(t *testing.T) {
	var c Consist
	if got := c.AddOrder(order.Order{Name: "Sand", Weight: 12, Length: 3}); got != 0 {
		t.Errorf("AddOrder position = %d, want 0", got)
	}
	c.AddLocomotive(catalog.DE2)
	if !approx(c.Totals().Weight, 12+38) || !approx(c.Totals().Length, 3+7.6) {
		t.Errorf("totals = %+v", c.Totals())
	}
	if c.Limits() != (Limits{1200, 300, 250}) {
		t.Errorf("limits = %+v", c.Limits())
	}
	if _, err := c.DeleteOrder(0); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if len(c.Orders()) != 0 {
		t.Errorf("orders = %v, want empty", c.Orders())
	}
}

func TestMoveOrder_KeepsTotals(t *testing.T) {
	c := New()
	c.AddOrder(order.Order{Name: "A", Weight: 1.1, Length: 2})
	c.AddOrder(order.Order{Name: "B", Weight: 2.2, Length: 3})
	before := c.Totals()
	if err := c.MoveOrderUp(1); err != nil {
		t.Fatalf("MoveOrderUp: %v", err)
	}
	if err := c.MoveOrderDown(1); err != nil {
		t.Fatalf("MoveOrderDown: %v", err)
	}
	if c.Totals() != before {
		t.Errorf("totals = %+v, want %+v", c.Totals(), before)
	}
	if err := c.MoveOrderUp(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("MoveOrderUp(2) err = %v, want ErrOutOfRange", err)
	}
}

// TestRandomMutations checks after every mutation that the cached totals
// match a fresh sum over the current lists.
func TestRandomMutations(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	ids := catalog.LocomotiveIDs()
	c := New()

	for step := 0; step < 500; step++ {
		n := len(c.Orders())
		var err error
		switch r.IntN(8) {
		case 0:
			c.AddLocomotive(ids[r.IntN(len(ids))])
		case 1:
			if len(c.Locomotives()) > 0 {
				_, err = c.RemoveLocomotive(r.IntN(len(c.Locomotives())))
			}
		case 2:
			if len(c.Locomotives()) > 0 {
				_, err = c.TogglePowered(r.IntN(len(c.Locomotives())))
			}
		case 3:
			c.AddOrder(order.Order{Weight: r.Float64() * 100, Length: r.Float64() * 20})
		case 4:
			c.InsertOrder(r.IntN(n+3)-1, order.Order{Weight: r.Float64() * 50, Length: r.Float64() * 10})
		case 5:
			if n > 0 {
				_, err = c.DeleteOrder(r.IntN(n))
			}
		case 6:
			if n > 0 {
				err = c.EditOrder(r.IntN(n), order.Order{Weight: r.Float64() * 30, Length: r.Float64() * 5})
			}
		case 7:
			if n > 0 {
				err = c.MoveOrderUp(r.IntN(n))
			}
		}
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}

		want := ComputeTotals(c.Locomotives(), c.Orders())
		got := c.Totals()
		if math.Abs(got.Weight-want.Weight) > 1e-6 || math.Abs(got.Length-want.Length) > 1e-6 {
			t.Fatalf("step %d: totals = %+v, want %+v", step, got, want)
		}
		if c.Limits() != ComputeLimits(c.Locomotives()) {
			t.Fatalf("step %d: limits = %+v, want %+v", step, c.Limits(), ComputeLimits(c.Locomotives()))
		}
	}
}
