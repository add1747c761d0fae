package models

import "time"

// Lead is a loan lead synced from the origination system. The owning agent,
// franchise and bank keys are normalized at ingest; Payload keeps the raw
// upstream record because its reference fields arrive in several shapes and
// the aggregator re-reads them with its own fallback chain.
type Lead struct {
	ID          string  `gorm:"type:char(36);primaryKey"`
	AgentID     string  `gorm:"type:char(36);index"`
	FranchiseID string  `gorm:"type:char(36);index"`
	BankID      string  `gorm:"type:char(36);index"`
	Status      string  `gorm:"size:32;not null;default:logged;index"`
	LoanAmount  float64 `gorm:"not null;default:0"`
	Payload     JSON    `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// Invoice is a commission invoice synced from the origination system.
// Amount fields are intentionally nullable: upstream records carry one of
// commissionAmount, netPayable or amount depending on their age, and the
// aggregator picks the first defined one.
type Invoice struct {
	ID               string   `gorm:"type:char(36);primaryKey"`
	AgentID          string   `gorm:"type:char(36);index"`
	FranchiseID      string   `gorm:"type:char(36);index"`
	BankID           string   `gorm:"type:char(36);index"`
	Status           string   `gorm:"size:32;not null;default:pending;index"`
	CommissionAmount *float64 `gorm:"type:decimal(14,2)"`
	NetPayable       *float64 `gorm:"type:decimal(14,2)"`
	Amount           *float64 `gorm:"type:decimal(14,2)"`
	Payload          JSON     `gorm:"type:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
