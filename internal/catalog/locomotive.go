// Package catalog holds the built-in locomotive and station reference data.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownIdentifier is returned when text does not name a catalog entry.
var ErrUnknownIdentifier = errors.New("unknown catalog identifier")

// LocomotiveID identifies a locomotive or car variant.
type LocomotiveID int

const (
	DE2 LocomotiveID = iota
	S060
	DM3
	DH4
	S282
	DE6
	DE6Slug
	BE2
	DM1U
	Caboose

	numLocomotives
)

var locomotiveKeys = [numLocomotives]string{
	"DE2", "S060", "DM3", "DH4", "S282", "DE6", "DE6Slug", "BE2", "DM1U", "Caboose",
}

var locomotiveNames = [numLocomotives]string{
	"DE2", "S060", "DM3", "DH4", "S282", "DE6", "DE6 Slug", "BE2-260", "DM1U-150", "Caboose",
}

// Valid reports whether id is part of the catalog.
func (id LocomotiveID) Valid() bool {
	return id >= 0 && id < numLocomotives
}

// Key returns the stable identifier used for storage, e.g. "DE6Slug".
func (id LocomotiveID) Key() string {
	if !id.Valid() {
		return fmt.Sprintf("LocomotiveID(%d)", int(id))
	}
	return locomotiveKeys[id]
}

// String returns the display name, e.g. "DE6 Slug".
func (id LocomotiveID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("LocomotiveID(%d)", int(id))
	}
	return locomotiveNames[id]
}

// GradeCondition is a track-grade/weather condition a capacity rating applies to.
type GradeCondition int

const (
	ZeroGrade GradeCondition = iota // flat track
	TwoGrade                        // 2% grade
	RainGrade                       // 2% grade in rain
)

// GradeConditions lists every condition in display order.
var GradeConditions = []GradeCondition{ZeroGrade, TwoGrade, RainGrade}

func (c GradeCondition) String() string {
	switch c {
	case ZeroGrade:
		return "0% grade"
	case TwoGrade:
		return "2% grade"
	case RainGrade:
		return "2% grade in rain"
	}
	return fmt.Sprintf("GradeCondition(%d)", int(c))
}

// LocomotiveKind holds the physical attributes of a catalog variant.
type LocomotiveKind struct {
	ID LocomotiveID
	// Mass in tonnes.
	Mass float64
	// Length in metres.
	Length float64
	// Tonnage the unit can pull on flat track, a 2% grade, and a 2% grade in rain.
	ZeroGrade int
	TwoGrade  int
	RainGrade int
	// HasPower is false for slugs, cabooses and other unpowered cars.
	HasPower bool
}

// Capacity returns the rating for the given condition.
func (k *LocomotiveKind) Capacity(c GradeCondition) int {
	switch c {
	case ZeroGrade:
		return k.ZeroGrade
	case TwoGrade:
		return k.TwoGrade
	case RainGrade:
		return k.RainGrade
	}
	panic(fmt.Sprintf("catalog: unknown grade condition %d", int(c)))
}

// newKind builds a catalog entry. Lengths are given in millimetres.
func newKind(id LocomotiveID, mass, lengthMM float64, zero, two, rain int, hasPower bool) LocomotiveKind {
	return LocomotiveKind{
		ID:        id,
		Mass:      mass,
		Length:    lengthMM / 1000,
		ZeroGrade: zero,
		TwoGrade:  two,
		RainGrade: rain,
		HasPower:  hasPower,
	}
}

var locomotives = [numLocomotives]LocomotiveKind{
	DE2:     newKind(DE2, 38.0, 7600, 1200, 300, 250, true),
	S060:    newKind(S060, 50.7, 9320, 1500, 400, 300, true),
	DM3:     newKind(DM3, 52.0, 8600, 2000, 500, 400, true),
	DH4:     newKind(DH4, 77.5, 12840, 2000, 600, 500, true),
	S282:    newKind(S282, 174.8, 22180, 3000, 1000, 800, true),
	DE6:     newKind(DE6, 125.0, 18640, 3000, 1200, 1000, true),
	DE6Slug: newKind(DE6Slug, 125.0, 16800, 0, 0, 0, false),
	BE2:     newKind(BE2, 12.0, 4080, 800, 100, 50, true),
	DM1U:    newKind(DM1U, 10.4, 14470, 0, 0, 0, true),
	Caboose: newKind(Caboose, 22.0, 13200, 0, 0, 0, false),
}

// Locomotive returns the shared catalog entry for id. The entry must not be
// modified. An id outside the catalog is a programming error and panics.
func Locomotive(id LocomotiveID) *LocomotiveKind {
	if !id.Valid() {
		panic(fmt.Sprintf("catalog: unknown locomotive %d", int(id)))
	}
	return &locomotives[id]
}

// LocomotiveIDs returns every locomotive in picker order.
func LocomotiveIDs() []LocomotiveID {
	ids := make([]LocomotiveID, numLocomotives)
	for i := range ids {
		ids[i] = LocomotiveID(i)
	}
	return ids
}

// ParseLocomotive resolves a key or display name, ignoring case.
func ParseLocomotive(s string) (LocomotiveID, error) {
	s = strings.TrimSpace(s)
	for i := range numLocomotives {
		if strings.EqualFold(s, locomotiveKeys[i]) || strings.EqualFold(s, locomotiveNames[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("catalog: locomotive %q: %w", s, ErrUnknownIdentifier)
}
