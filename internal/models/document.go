package models

import "time"

// Document ownership entity types accepted by the upload endpoint.
const (
	DocumentEntityUser      = "user"
	DocumentEntityFranchise = "franchise"
)

// Single-valued document types: an entity holds at most one document per
// type. "additional" is the only multi-valued type.
var SingleValuedDocTypes = map[string]bool{
	"pan":            true,
	"aadhaar":        true,
	"gst":            true,
	"bank_statement": true,
	"shop_act":       true,
}

const DocTypeAdditional = "additional"

// ValidDocType reports whether t is an accepted documentType.
func ValidDocType(t string) bool {
	return t == DocTypeAdditional || SingleValuedDocTypes[t]
}

// Document is an uploaded file owned by exactly one entity. Rows are created
// only by a successful upload; clients never mutate them, only the
// verification status moves server-side.
type Document struct {
	ID                 string `gorm:"type:char(36);primaryKey"`
	EntityType         string `gorm:"size:32;not null;index:idx_document_owner"`
	EntityID           string `gorm:"type:char(36);not null;index:idx_document_owner"`
	DocumentType       string `gorm:"size:64;not null"`
	Label              string `gorm:"size:255"`
	OriginalFileName   string `gorm:"size:255;not null"`
	ContentType        string `gorm:"size:128"`
	ObjectKey          string `gorm:"size:512;not null"`
	URL                string `gorm:"size:1024;not null"`
	VerificationStatus string `gorm:"size:32;not null;default:pending"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
