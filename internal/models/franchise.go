package models

import "time"

// Franchise is a franchise outlet in the network.
type Franchise struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"size:255;not null;index"`
	City      string `gorm:"size:128"`
	State     string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"size:255"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Franchise
func (Franchise) TableName() string {
	return "franchises"
}

// RelationshipManager is a regional manager who can own agents directly.
type RelationshipManager struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"size:255;not null;index"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:32"`
	Region    string `gorm:"size:128"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for RelationshipManager
func (RelationshipManager) TableName() string {
	return "relationship_managers"
}

// Bank is a lending partner that leads are logged against.
type Bank struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"size:255;not null;index"`
	IFSC      string `gorm:"size:16"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Bank
func (Bank) TableName() string {
	return "banks"
}
