package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/identity"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/stats"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncService ingests lead and invoice records pushed from the origination
// system. Records arrive loosely typed; each one is normalized through the
// identity key primitive at ingest and its raw payload retained for the
// aggregator, which re-reads the reference fields with its own fallback
// chain.
type SyncService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

// recordID extracts the upstream id of a raw record ("_id" first, "id"
// second); a record with no id of its own gets a fresh one.
func recordID(raw json.RawMessage) string {
	var ids struct {
		MongoID types.EntityRef `json:"_id"`
		ID      types.EntityRef `json:"id"`
	}
	_ = json.Unmarshal(raw, &ids)
	if key := identity.FirstKey(ids.MongoID, ids.ID); !key.IsEmpty() {
		return key.String()
	}
	return uuid.New().String()
}

// IngestLeads upserts a batch of raw lead records. Malformed records are
// logged and skipped; the batch never fails as a whole.
func (s *SyncService) IngestLeads(ctx context.Context, raws []json.RawMessage) (int, error) {
	stored := 0
	for _, raw := range raws {
		var view stats.Lead
		if err := json.Unmarshal(raw, &view); err != nil {
			s.Log.WithFields(logrus.Fields{
				"module":   "services",
				"funcName": "IngestLeads",
			}).Error(err.Error())
			continue
		}

		lead := models.Lead{
			ID:          recordID(raw),
			AgentID:     view.OwnerKey(stats.KindAgent).String(),
			FranchiseID: view.OwnerKey(stats.KindFranchise).String(),
			BankID:      view.OwnerKey(stats.KindBank).String(),
			Status:      defaultLeadStatus(view.Status),
			LoanAmount:  view.LoanAmount.Float64(),
			Payload:     models.NewJSON(raw),
		}
		if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&lead).Error; err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// IngestInvoices upserts a batch of raw invoice records.
func (s *SyncService) IngestInvoices(ctx context.Context, raws []json.RawMessage) (int, error) {
	stored := 0
	for _, raw := range raws {
		var view stats.Invoice
		if err := json.Unmarshal(raw, &view); err != nil {
			s.Log.WithFields(logrus.Fields{
				"module":   "services",
				"funcName": "IngestInvoices",
			}).Error(err.Error())
			continue
		}

		inv := models.Invoice{
			ID:          recordID(raw),
			AgentID:     view.OwnerKey(stats.KindAgent).String(),
			FranchiseID: view.OwnerKey(stats.KindFranchise).String(),
			BankID:      view.OwnerKey(stats.KindBank).String(),
			Status:      defaultInvoiceStatus(view.Status),
			Payload:     models.NewJSON(raw),
		}
		if view.CommissionAmount.Defined() {
			v := view.CommissionAmount.Float64()
			inv.CommissionAmount = &v
		}
		if view.NetPayable.Defined() {
			v := view.NetPayable.Float64()
			inv.NetPayable = &v
		}
		if view.Amount.Defined() {
			v := view.Amount.Float64()
			inv.Amount = &v
		}
		if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&inv).Error; err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

// ListLeads returns the leads owned by one entity kind/id.
func (s *SyncService) ListLeads(ctx context.Context, kind string, ref any) ([]models.Lead, error) {
	key := identity.KeyOf(ref)
	if key.IsEmpty() {
		return nil, nil
	}
	var leads []models.Lead
	err := s.DB.WithContext(ctx).
		Where(ownerColumn(kind)+" = ?", key.String()).
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

// ListInvoices returns the invoices owned by one entity kind/id.
func (s *SyncService) ListInvoices(ctx context.Context, kind string, ref any) ([]models.Invoice, error) {
	key := identity.KeyOf(ref)
	if key.IsEmpty() {
		return nil, nil
	}
	var invoices []models.Invoice
	err := s.DB.WithContext(ctx).
		Where(ownerColumn(kind)+" = ?", key.String()).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func ownerColumn(kind string) string {
	switch kind {
	case stats.KindFranchise:
		return "franchise_id"
	case stats.KindBank:
		return "bank_id"
	default:
		return "agent_id"
	}
}

func defaultLeadStatus(s string) string {
	if s == "" {
		return "logged"
	}
	return s
}

func defaultInvoiceStatus(s string) string {
	if s == "" {
		return "pending"
	}
	return s
}
