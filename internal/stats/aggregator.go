// Package stats computes per-entity roll-ups of leads and invoices. The
// inputs are loosely-typed upstream records, so every owning reference is
// matched through the identity key primitive and every amount tolerates the
// malformed shapes the origination system produces.
package stats

import (
	"github.com/shopspring/decimal"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/identity"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// Target kinds a roll-up can be computed for.
const (
	KindAgent     = "agent"
	KindFranchise = "franchise"
	KindBank      = "bank"
)

// ValidKind reports whether k is an aggregatable target kind.
func ValidKind(k string) bool {
	return k == KindAgent || k == KindFranchise || k == KindBank
}

// Terminal lead statuses. "Active" is open-world: any status that is not
// terminal counts as active, so new upstream statuses default to active
// until they are explicitly terminal.
const (
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// Lead is the aggregation view of an upstream lead. Each owning relation
// appears under up to three field names depending on the record's age; the
// first non-empty reference wins.
type Lead struct {
	Agent           types.EntityRef `json:"agent"`
	AgentID         types.EntityRef `json:"agentId"`
	LegacyAgent     types.EntityRef `json:"agent_id"`
	Franchise       types.EntityRef `json:"franchise"`
	FranchiseID     types.EntityRef `json:"franchiseId"`
	LegacyFranchise types.EntityRef `json:"franchise_id"`
	Bank            types.EntityRef `json:"bank"`
	BankID          types.EntityRef `json:"bankId"`
	LegacyBank      types.EntityRef `json:"bank_id"`
	Status          string          `json:"status"`
	LoanAmount      Amount          `json:"loanAmount"`
}

// Invoice is the aggregation view of an upstream commission invoice.
type Invoice struct {
	Agent            types.EntityRef `json:"agent"`
	AgentID          types.EntityRef `json:"agentId"`
	LegacyAgent      types.EntityRef `json:"agent_id"`
	Franchise        types.EntityRef `json:"franchise"`
	FranchiseID      types.EntityRef `json:"franchiseId"`
	LegacyFranchise  types.EntityRef `json:"franchise_id"`
	Bank             types.EntityRef `json:"bank"`
	BankID           types.EntityRef `json:"bankId"`
	LegacyBank       types.EntityRef `json:"bank_id"`
	Status           string          `json:"status"`
	CommissionAmount Amount          `json:"commissionAmount"`
	NetPayable       Amount          `json:"netPayable"`
	Amount           Amount          `json:"amount"`
}

// Collections is the in-memory snapshot a roll-up is computed from.
type Collections struct {
	Leads    []Lead
	Invoices []Invoice
}

// Record is the derived roll-up for one target entity. It is recomputed on
// every request and never persisted.
type Record struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Completed     int     `json:"completed"`
	CommissionSum float64 `json:"commissionSum"`
	AmountSum     float64 `json:"amountSum"`
}

// For computes the roll-up of c for the target entity. target may be any
// reference shape. An empty target key matches nothing and yields the zero
// Record; unowned rows are never swept up by an absent reference.
func For(kind string, target any, c Collections) Record {
	var rec Record

	targetKey := identity.KeyOf(target)
	if targetKey.IsEmpty() {
		return rec
	}

	amountSum := decimal.Zero
	for i := range c.Leads {
		lead := &c.Leads[i]
		if lead.OwnerKey(kind) != targetKey {
			continue
		}
		rec.Total++
		switch lead.Status {
		case StatusCompleted:
			rec.Completed++
		case StatusRejected:
			// terminal, neither active nor completed
		default:
			rec.Active++
		}
		amountSum = amountSum.Add(lead.LoanAmount.Decimal())
	}

	commissionSum := decimal.Zero
	for i := range c.Invoices {
		inv := &c.Invoices[i]
		if inv.OwnerKey(kind) != targetKey {
			continue
		}
		commissionSum = commissionSum.Add(inv.Commission())
	}

	rec.AmountSum, _ = amountSum.Float64()
	rec.CommissionSum, _ = commissionSum.Float64()
	return rec
}

// Commission picks the first defined amount field: commissionAmount, then
// netPayable, then amount, then zero.
func (inv *Invoice) Commission() decimal.Decimal {
	switch {
	case inv.CommissionAmount.Defined():
		return inv.CommissionAmount.Decimal()
	case inv.NetPayable.Defined():
		return inv.NetPayable.Decimal()
	case inv.Amount.Defined():
		return inv.Amount.Decimal()
	}
	return decimal.Zero
}

// OwnerKey resolves the lead's owning reference for a target kind: the
// populated nested object first, then the flat id field, then the legacy
// field name.
func (l *Lead) OwnerKey(kind string) identity.Key {
	switch kind {
	case KindFranchise:
		return identity.FirstKey(l.Franchise, l.FranchiseID, l.LegacyFranchise)
	case KindBank:
		return identity.FirstKey(l.Bank, l.BankID, l.LegacyBank)
	default:
		return identity.FirstKey(l.Agent, l.AgentID, l.LegacyAgent)
	}
}

// OwnerKey resolves the invoice's owning reference for a target kind.
func (inv *Invoice) OwnerKey(kind string) identity.Key {
	switch kind {
	case KindFranchise:
		return identity.FirstKey(inv.Franchise, inv.FranchiseID, inv.LegacyFranchise)
	case KindBank:
		return identity.FirstKey(inv.Bank, inv.BankID, inv.LegacyBank)
	default:
		return identity.FirstKey(inv.Agent, inv.AgentID, inv.LegacyAgent)
	}
}
