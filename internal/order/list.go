package order

import (
	"fmt"
	"slices"
)

// List is an ordered sequence of orders. Position is zero-based and
// determines train makeup order.
type List struct {
	orders []Order
}

// NewList returns a list holding a copy of orders.
func NewList(orders ...Order) *List {
	return &List{orders: slices.Clone(orders)}
}

// Len returns the number of orders.
func (l *List) Len() int {
	return len(l.orders)
}

// At returns the order at position p.
func (l *List) At(p int) (Order, error) {
	if err := l.check("get", p); err != nil {
		return Order{}, err
	}
	return l.orders[p], nil
}

// All returns a copy of the orders.
func (l *List) All() []Order {
	return slices.Clone(l.orders)
}

// Add appends o.
func (l *List) Add(o Order) int {
	l.orders = append(l.orders, o)
	return len(l.orders) - 1
}

// Insert places o at position at, shifting later orders right. A position
// outside [0, Len()] appends. The final position is returned.
func (l *List) Insert(at int, o Order) int {
	if at < 0 || at > len(l.orders) {
		return l.Add(o)
	}
	l.orders = slices.Insert(l.orders, at, o)
	return at
}

// AddAbove inserts o relative to context row r, at max(r-1, 0).
func (l *List) AddAbove(r int, o Order) (int, error) {
	if err := l.check("add above", r); err != nil {
		return 0, err
	}
	return l.Insert(max(r-1, 0), o), nil
}

// AddBelow inserts o after context row r, appending when r is the last row.
func (l *List) AddBelow(r int, o Order) (int, error) {
	if err := l.check("add below", r); err != nil {
		return 0, err
	}
	if r == len(l.orders)-1 {
		return l.Add(o), nil
	}
	return l.Insert(r+1, o), nil
}

// Delete removes the order at p, shifting later orders left.
func (l *List) Delete(p int) (Order, error) {
	if err := l.check("delete", p); err != nil {
		return Order{}, err
	}
	o := l.orders[p]
	l.orders = slices.Delete(l.orders, p, p+1)
	return o, nil
}

// Edit replaces the order at p.
func (l *List) Edit(p int, o Order) error {
	if err := l.check("edit", p); err != nil {
		return err
	}
	l.orders[p] = o
	return nil
}

// MoveUp swaps the order at p with its predecessor. It is a no-op at 0.
func (l *List) MoveUp(p int) error {
	if err := l.check("move up", p); err != nil {
		return err
	}
	if p > 0 {
		l.orders[p], l.orders[p-1] = l.orders[p-1], l.orders[p]
	}
	return nil
}

// MoveDown swaps the order at p with its successor. It is a no-op at the
// last position.
func (l *List) MoveDown(p int) error {
	if err := l.check("move down", p); err != nil {
		return err
	}
	if p < len(l.orders)-1 {
		l.orders[p], l.orders[p+1] = l.orders[p+1], l.orders[p]
	}
	return nil
}

func (l *List) check(op string, p int) error {
	if p < 0 || p >= len(l.orders) {
		return fmt.Errorf("order: %s %d of %d: %w", op, p, len(l.orders), ErrOutOfRange)
	}
	return nil
}
