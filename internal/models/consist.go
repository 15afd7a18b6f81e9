package models

import "time"

// Consist is a saved train plan. The cached totals are written for
// reporting only and are recomputed whenever the consist is loaded.
type Consist struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Name               string `gorm:"size:64;not null;uniqueIndex"`
	TotalWeight        float64
	TotalLength        float64
	SupportedZeroGrade int
	SupportedTwoGrade  int
	SupportedRainGrade int
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Locomotives []ConsistLocomotive `gorm:"foreignKey:ConsistID;constraint:OnDelete:CASCADE"`
	Orders      []ConsistOrder      `gorm:"foreignKey:ConsistID;constraint:OnDelete:CASCADE"`
}

// ConsistLocomotive is one unit in a consist, stored by catalog key.
type ConsistLocomotive struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ConsistID string `gorm:"size:36;not null;index"`
	Position  int    `gorm:"not null"`
	Kind      string `gorm:"size:32;not null"`
	Powered   bool   `gorm:"default:false"`
}

// ConsistOrder is one cargo order in a consist. Stations are stored by
// catalog key.
type ConsistOrder struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ConsistID      string `gorm:"size:36;not null;index"`
	Position       int    `gorm:"not null"`
	Name           string `gorm:"size:128"`
	Weight         float64
	Length         float64
	PickupStation  string `gorm:"size:32;not null"`
	PickupTrack    string `gorm:"size:64"`
	DropoffStation string `gorm:"size:32;not null"`
	DropoffTrack   string `gorm:"size:64"`
}
