package services

import (
	"context"
	"encoding/json"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/stats"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
	"gorm.io/gorm"
)

func refOf(id string) types.EntityRef {
	return types.EntityRef{ID: id}
}

// StatsFor loads the current lead/invoice snapshots and computes the
// roll-up for one target entity. The snapshots are read fresh per request;
// nothing is cached, collection sizes in this domain stay in the hundreds.
func StatsFor(ctx context.Context, db *gorm.DB, kind string, target any) (stats.Record, error) {
	var leads []models.Lead
	if err := db.WithContext(ctx).Find(&leads).Error; err != nil {
		return stats.Record{}, err
	}
	var invoices []models.Invoice
	if err := db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return stats.Record{}, err
	}

	c := stats.Collections{
		Leads:    make([]stats.Lead, 0, len(leads)),
		Invoices: make([]stats.Invoice, 0, len(invoices)),
	}
	for i := range leads {
		c.Leads = append(c.Leads, leadView(&leads[i]))
	}
	for i := range invoices {
		c.Invoices = append(c.Invoices, invoiceView(&invoices[i]))
	}

	return stats.For(kind, target, c), nil
}

// leadView rebuilds the aggregation view of a stored lead, preferring the
// raw upstream payload so the aggregator sees the original reference
// shapes; rows without a payload fall back to the normalized columns.
func leadView(m *models.Lead) stats.Lead {
	if len(m.Payload.JSON) > 0 {
		var v stats.Lead
		if err := json.Unmarshal(m.Payload.JSON, &v); err == nil {
			return v
		}
	}
	return stats.Lead{
		Agent:      refOf(m.AgentID),
		Franchise:  refOf(m.FranchiseID),
		Bank:       refOf(m.BankID),
		Status:     m.Status,
		LoanAmount: stats.AmountOf(m.LoanAmount),
	}
}

func invoiceView(m *models.Invoice) stats.Invoice {
	if len(m.Payload.JSON) > 0 {
		var v stats.Invoice
		if err := json.Unmarshal(m.Payload.JSON, &v); err == nil {
			return v
		}
	}
	v := stats.Invoice{
		Agent:     refOf(m.AgentID),
		Franchise: refOf(m.FranchiseID),
		Bank:      refOf(m.BankID),
		Status:    m.Status,
	}
	if m.CommissionAmount != nil {
		v.CommissionAmount = stats.AmountOf(*m.CommissionAmount)
	}
	if m.NetPayable != nil {
		v.NetPayable = stats.AmountOf(*m.NetPayable)
	}
	if m.Amount != nil {
		v.Amount = stats.AmountOf(*m.Amount)
	}
	return v
}
