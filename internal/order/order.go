// Package order manages the ordered list of cargo orders in a consist.
package order

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zulandar/consistyard/internal/catalog"
)

var (
	// ErrOutOfRange is returned when a position is outside the list.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidNumericInput is returned when weight or length text is not a number.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
)

// Order is a cargo-hauling task. Edits replace the whole value.
type Order struct {
	Name         string
	Weight       float64 // tonnes
	Length       float64 // metres
	Pickup       catalog.StationID
	PickupTrack  string
	Dropoff      catalog.StationID
	DropoffTrack string
}

// Draft holds order form input before weight and length are parsed.
type Draft struct {
	Name         string
	Weight       string
	Length       string
	Pickup       catalog.StationID
	PickupTrack  string
	Dropoff      catalog.StationID
	DropoffTrack string
}

// NewDraft returns an empty draft picking up at the steel mill and
// dropping off at the harbor.
func NewDraft() Draft {
	return Draft{Pickup: catalog.SteelMill, Dropoff: catalog.Harbor}
}

// DraftFrom fills a draft from an existing order for editing.
func DraftFrom(o Order) Draft {
	return Draft{
		Name:         o.Name,
		Weight:       strconv.FormatFloat(o.Weight, 'g', -1, 64),
		Length:       strconv.FormatFloat(o.Length, 'g', -1, 64),
		Pickup:       o.Pickup,
		PickupTrack:  o.PickupTrack,
		Dropoff:      o.Dropoff,
		DropoffTrack: o.DropoffTrack,
	}
}

// Order parses the draft. Weight and length must be finite numbers.
func (d Draft) Order() (Order, error) {
	weight, err := parseAmount("weight", d.Weight)
	if err != nil {
		return Order{}, err
	}
	length, err := parseAmount("length", d.Length)
	if err != nil {
		return Order{}, err
	}
	return Order{
		Name:         d.Name,
		Weight:       weight,
		Length:       length,
		Pickup:       d.Pickup,
		PickupTrack:  d.PickupTrack,
		Dropoff:      d.Dropoff,
		DropoffTrack: d.DropoffTrack,
	}, nil
}

func parseAmount(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("order: %s %q: %w", field, s, ErrInvalidNumericInput)
	}
	return v, nil
}
