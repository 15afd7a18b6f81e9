// Package store saves and loads named consists through GORM.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/consistyard/internal/catalog"
	"github.com/zulandar/consistyard/internal/consist"
	"github.com/zulandar/consistyard/internal/models"
	"github.com/zulandar/consistyard/internal/order"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no consist has the requested name.
var ErrNotFound = errors.New("consist not found")

// Summary describes a saved consist.
type Summary struct {
	Name        string
	Locomotives int
	Orders      int
	Totals      consist.Totals
	Limits      consist.Limits
	UpdatedAt   time.Time
}

// ErrNameRequired is returned when a consist name is empty or blank.
var ErrNameRequired = errors.New("consist name is required")

// normalizeName trims surrounding space so every operation addresses the
// same row for " main" and "main".
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("store: %w", ErrNameRequired)
	}
	return name, nil
}

// Save replaces the stored contents of the named consist with c, creating
// it if needed. Names are trimmed of surrounding space.
func Save(db *gorm.DB, name string, c *consist.Consist) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var row models.Consist
		err := tx.Where("name = ?", name).First(&row).Error
		isNew := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !isNew {
			return fmt.Errorf("store: find %s: %w", name, err)
		}
		if isNew {
			row = models.Consist{ID: uuid.NewString(), Name: name}
		}

		totals, limits := c.Totals(), c.Limits()
		row.TotalWeight = totals.Weight
		row.TotalLength = totals.Length
		row.SupportedZeroGrade = limits.ZeroGrade
		row.SupportedTwoGrade = limits.TwoGrade
		row.SupportedRainGrade = limits.RainGrade

		if isNew {
			err = tx.Omit(clause.Associations).Create(&row).Error
		} else {
			err = tx.Omit(clause.Associations).Save(&row).Error
		}
		if err != nil {
			return fmt.Errorf("store: write %s: %w", name, err)
		}

		if err := deleteChildren(tx, row.ID); err != nil {
			return fmt.Errorf("store: clear %s: %w", name, err)
		}

		locos := c.Locomotives()
		if len(locos) > 0 {
			rows := make([]models.ConsistLocomotive, len(locos))
			for i, l := range locos {
				rows[i] = models.ConsistLocomotive{
					ConsistID: row.ID,
					Position:  i,
					Kind:      l.Kind.ID.Key(),
					Powered:   l.Powered,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("store: write %s locomotives: %w", name, err)
			}
		}

		orders := c.Orders()
		if len(orders) > 0 {
			rows := make([]models.ConsistOrder, len(orders))
			for i, o := range orders {
				rows[i] = models.ConsistOrder{
					ConsistID:      row.ID,
					Position:       i,
					Name:           o.Name,
					Weight:         o.Weight,
					Length:         o.Length,
					PickupStation:  o.Pickup.Key(),
					PickupTrack:    o.PickupTrack,
					DropoffStation: o.Dropoff.Key(),
					DropoffTrack:   o.DropoffTrack,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("store: write %s orders: %w", name, err)
			}
		}
		return nil
	})
}

// Load rebuilds the named consist. Totals are recomputed from the lists;
// the cached values in storage are ignored.
func Load(db *gorm.DB, name string) (*consist.Consist, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	var row models.Consist
	err = preloaded(db).Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("store: %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}
	return fromRow(row)
}

// LoadOrNew is like Load but returns an empty consist when name is not stored.
func LoadOrNew(db *gorm.DB, name string) (*consist.Consist, error) {
	c, err := Load(db, name)
	if errors.Is(err, ErrNotFound) {
		return consist.New(), nil
	}
	return c, err
}

// List returns a summary of every stored consist, ordered by name.
func List(db *gorm.DB) ([]Summary, error) {
	var rows []models.Consist
	if err := preloaded(db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		c, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			Name:        row.Name,
			Locomotives: len(row.Locomotives),
			Orders:      len(row.Orders),
			Totals:      c.Totals(),
			Limits:      c.Limits(),
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}

// Delete removes the named consist and its lists.
func Delete(db *gorm.DB, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var row models.Consist
		err := tx.Where("name = ?", name).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("store: %s: %w", name, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("store: find %s: %w", name, err)
		}
		if err := deleteChildren(tx, row.ID); err != nil {
			return fmt.Errorf("store: delete %s: %w", name, err)
		}
		if err := tx.Delete(&row).Error; err != nil {
			return fmt.Errorf("store: delete %s: %w", name, err)
		}
		return nil
	})
}

func preloaded(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	return db.Preload("Locomotives", byPosition).Preload("Orders", byPosition)
}

func deleteChildren(tx *gorm.DB, consistID string) error {
	if err := tx.Where("consist_id = ?", consistID).Delete(&models.ConsistLocomotive{}).Error; err != nil {
		return err
	}
	return tx.Where("consist_id = ?", consistID).Delete(&models.ConsistOrder{}).Error
}

func fromRow(row models.Consist) (*consist.Consist, error) {
	locos := make([]consist.Locomotive, len(row.Locomotives))
	for i, lr := range row.Locomotives {
		id, err := catalog.ParseLocomotive(lr.Kind)
		if err != nil {
			return nil, fmt.Errorf("store: %s locomotive %d: %w", row.Name, lr.Position, err)
		}
		locos[i] = consist.Locomotive{Kind: catalog.Locomotive(id), Powered: lr.Powered}
	}

	orders := make([]order.Order, len(row.Orders))
	for i, orow := range row.Orders {
		pickup, err := catalog.ParseStation(orow.PickupStation)
		if err != nil {
			return nil, fmt.Errorf("store: %s order %d pickup: %w", row.Name, orow.Position, err)
		}
		dropoff, err := catalog.ParseStation(orow.DropoffStation)
		if err != nil {
			return nil, fmt.Errorf("store: %s order %d dropoff: %w", row.Name, orow.Position, err)
		}
		orders[i] = order.Order{
			Name:         orow.Name,
			Weight:       orow.Weight,
			Length:       orow.Length,
			Pickup:       pickup,
			PickupTrack:  orow.PickupTrack,
			Dropoff:      dropoff,
			DropoffTrack: orow.DropoffTrack,
		}
	}
	return consist.Restore(locos, orders), nil
}
