package models

import (
	"time"
)

// Agent is a network agent originating leads. Every agent is managed by
// exactly one owner, either a franchise or a relationship manager; the pair
// (ManagedByModel, ManagedByID) is the stored form of that union. Legacy
// rows may instead populate FranchiseID with an empty discriminator.
type Agent struct {
	ID             string `gorm:"type:char(36);primaryKey"`
	Name           string `gorm:"size:255;not null;index"`
	Email          string `gorm:"size:255;index"`
	Phone          string `gorm:"size:32"`
	Status         string `gorm:"size:32;not null;default:active"`
	ManagedByModel string `gorm:"size:32;index:idx_agent_owner"`
	ManagedByID    string `gorm:"type:char(36);index:idx_agent_owner"`
	FranchiseID    string `gorm:"type:char(36);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the table name for Agent
func (Agent) TableName() string {
	return "agents"
}
