// Package consist assembles locomotives and orders into a train and keeps
// its weight, length and grade-capacity totals current.
package consist

import (
	"fmt"
	"slices"

	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/order"
)

// ErrOutOfRange is returned for a locomotive or order position outside its list.
var ErrOutOfRange = order.ErrOutOfRange

// Locomotive is a catalog unit placed in the consist.
type Locomotive struct {
	Kind *catalog.LocomotiveKind
	// Powered only matters when Kind.HasPower is set.
	Powered bool
}

// NewLocomotive returns a unit of the given kind, powered if it can be.
func NewLocomotive(id catalog.LocomotiveID) Locomotive {
	k := catalog.Locomotive(id)
	return Locomotive{Kind: k, Powered: k.HasPower}
}

// Tractive reports whether the unit contributes to grade capacity.
func (l Locomotive) Tractive() bool {
	return l.Kind.HasPower && l.Powered
}

// Limits is the tonnage the consist's powered units can pull per grade condition.
type Limits struct {
	ZeroGrade int `json:"zero_grade"`
	TwoGrade  int `json:"two_grade"`
	RainGrade int `json:"rain_grade"`
}

// For returns the limit for condition c.
func (l Limits) For(c catalog.GradeCondition) int {
	switch c {
	case catalog.ZeroGrade:
		return l.ZeroGrade
	case catalog.TwoGrade:
		return l.TwoGrade
	case catalog.RainGrade:
		return l.RainGrade
	}
	panic(fmt.Sprintf("consist: unknown grade condition %d", int(c)))
}

// Totals is the consist's overall weight (t) and length (m).
type Totals struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
}

// ComputeLimits sums capacity ratings over tractive units.
func ComputeLimits(locos []Locomotive) Limits {
	var lim Limits
	for _, l := range locos {
		if !l.Tractive() {
			continue
		}
		lim.ZeroGrade += l.Kind.ZeroGrade
		lim.TwoGrade += l.Kind.TwoGrade
		lim.RainGrade += l.Kind.RainGrade
	}
	return lim
}

// ComputeTotals sums weight and length over every unit and order.
func ComputeTotals(locos []Locomotive, orders []order.Order) Totals {
	var t Totals
	for _, l := range locos {
		t.Weight += l.Kind.Mass
		t.Length += l.Kind.Length
	}
	for _, o := range orders {
		t.Weight += o.Weight
		t.Length += o.Length
	}
	return t
}

// Consist owns a train's locomotive and order lists. The zero value is an
// empty consist. It is not safe for concurrent use.
type Consist struct {
	locos  []Locomotive
	orders order.List

	totals Totals
	limits Limits
}

// New returns an empty consist.
func New() *Consist {
	return &Consist{}
}

// Restore rebuilds a consist from stored lists. Totals are recomputed.
// Every locomotive must carry a catalog kind; Restore panics otherwise.
func Restore(locos []Locomotive, orders []order.Order) *Consist {
	for i, l := range locos {
		if l.Kind == nil {
			panic(fmt.Sprintf("consist: restore locomotive %d has no kind", i))
		}
	}
	c := &Consist{
		locos:  slices.Clone(locos),
		orders: *order.NewList(orders...),
	}
	c.recompute()
	return c
}

// Totals returns the current weight and length.
func (c *Consist) Totals() Totals { return c.totals }

// Limits returns the current supported weight per grade condition.
func (c *Consist) Limits() Limits { return c.limits }

// Overloaded reports whether the train weighs more than its powered units
// can pull under condition cond.
func (c *Consist) Overloaded(cond catalog.GradeCondition) bool {
	return c.totals.Weight > float64(c.limits.For(cond))
}

// Locomotives returns a copy of the locomotive list.
func (c *Consist) Locomotives() []Locomotive {
	return slices.Clone(c.locos)
}

// Orders returns a copy of the order list.
func (c *Consist) Orders() []order.Order {
	return c.orders.All()
}

// Order returns the order at position p.
func (c *Consist) Order(p int) (order.Order, error) {
	return c.orders.At(p)
}

// AddLocomotive appends a unit of kind id and returns its position.
func (c *Consist) AddLocomotive(id catalog.LocomotiveID) int {
	c.locos = append(c.locos, NewLocomotive(id))
	c.recompute()
	return len(c.locos) - 1
}

// RemoveLocomotive removes the unit at position i.
func (c *Consist) RemoveLocomotive(i int) (Locomotive, error) {
	if err := c.checkLoco("remove", i); err != nil {
		return Locomotive{}, err
	}
	l := c.locos[i]
	c.locos = slices.Delete(c.locos, i, i+1)
	c.recompute()
	return l, nil
}

// SetPowered sets the power flag of the unit at position i.
func (c *Consist) SetPowered(i int, powered bool) error {
	if err := c.checkLoco("set power", i); err != nil {
		return err
	}
	c.locos[i].Powered = powered
	c.recompute()
	return nil
}

// TogglePowered flips the power flag of the unit at position i and returns
// the new state.
func (c *Consist) TogglePowered(i int) (bool, error) {
	if err := c.checkLoco("toggle power", i); err != nil {
		return false, err
	}
	c.locos[i].Powered = !c.locos[i].Powered
	c.recompute()
	return c.locos[i].Powered, nil
}

// AddOrder appends o and returns its position.
func (c *Consist) AddOrder(o order.Order) int {
	p := c.orders.Add(o)
	c.recompute()
	return p
}

// InsertOrder inserts o at position at, appending when at is out of range.
func (c *Consist) InsertOrder(at int, o order.Order) int {
	p := c.orders.Insert(at, o)
	c.recompute()
	return p
}

// AddOrderAbove inserts o relative to row r; see order.List.AddAbove.
func (c *Consist) AddOrderAbove(r int, o order.Order) (int, error) {
	p, err := c.orders.AddAbove(r, o)
	if err != nil {
		return 0, err
	}
	c.recompute()
	return p, nil
}

// AddOrderBelow inserts o after row r; see order.List.AddBelow.
func (c *Consist) AddOrderBelow(r int, o order.Order) (int, error) {
	p, err := c.orders.AddBelow(r, o)
	if err != nil {
		return 0, err
	}
	c.recompute()
	return p, nil
}

// DeleteOrder removes the order at position p.
func (c *Consist) DeleteOrder(p int) (order.Order, error) {
	o, err := c.orders.Delete(p)
	if err != nil {
		return order.Order{}, err
	}
	c.recompute()
	return o, nil
}

// EditOrder replaces the order at position p.
func (c *Consist) EditOrder(p int, o order.Order) error {
	if err := c.orders.Edit(p, o); err != nil {
		return err
	}
	c.recompute()
	return nil
}

// MoveOrderUp swaps the order at p with its predecessor. Totals do not
// depend on order, so nothing is recomputed.
func (c *Consist) MoveOrderUp(p int) error {
	return c.orders.MoveUp(p)
}

// MoveOrderDown swaps the order at p with its successor.
func (c *Consist) MoveOrderDown(p int) error {
	return c.orders.MoveDown(p)
}

func (c *Consist) recompute() {
	c.totals = ComputeTotals(c.locos, c.orders.All())
	c.limits = ComputeLimits(c.locos)
}

func (c *Consist) checkLoco(op string, i int) error {
	if i < 0 || i >= len(c.locos) {
		return fmt.Errorf("consist: %s locomotive %d of %d: %w", op, i, len(c.locos), ErrOutOfRange)
	}
	return nil
}
