package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/attachments"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/shrawani1619/ykc-finserv-sub001/internal/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DocumentService commits uploaded files: object in storage, row in the
// documents table. It is the Uploader behind every attachment stager.
type DocumentService struct {
	DB    *gorm.DB
	Store storage.Provider
	Log   *logrus.Logger
}

var _ attachments.Uploader = (*DocumentService)(nil)

// Upload stores one file for an existing entity and records the Document.
func (s *DocumentService) Upload(ctx context.Context, req attachments.UploadRequest) (*models.Document, error) {
	if req.EntityType != models.DocumentEntityUser && req.EntityType != models.DocumentEntityFranchise {
		return nil, fmt.Errorf("invalid entity type %q", req.EntityType)
	}
	if req.EntityID == "" {
		return nil, errors.New("entity id is required")
	}
	if !models.ValidDocType(req.DocumentType) {
		return nil, fmt.Errorf("invalid document type %q", req.DocumentType)
	}

	ext := filepath.Ext(req.File.Name)
	if ext == "" {
		return nil, errors.New("file has no extension")
	}

	objectKey := path.Join(req.EntityType, req.EntityID, uuid.New().String()+ext)
	if err := s.Store.Put(ctx, objectKey, req.File.ContentType, bytes.NewReader(req.File.Content)); err != nil {
		return nil, fmt.Errorf("failed to upload file to storage provider: %w", err)
	}

	doc := &models.Document{
		ID:                 uuid.New().String(),
		EntityType:         req.EntityType,
		EntityID:           req.EntityID,
		DocumentType:       req.DocumentType,
		Label:              req.Label,
		OriginalFileName:   req.File.Name,
		ContentType:        req.File.ContentType,
		ObjectKey:          objectKey,
		URL:                s.Store.URL(objectKey),
		VerificationStatus: "pending",
	}
	if err := s.DB.WithContext(ctx).Create(doc).Error; err != nil {
		// The row is the source of truth; an orphaned object is reclaimed
		// so it cannot accumulate.
		if derr := s.Store.Delete(ctx, objectKey); derr != nil {
			s.Log.WithFields(logrus.Fields{
				"module":    "services",
				"funcName":  "Upload",
				"objectKey": objectKey,
			}).Error(derr.Error())
		}
		return nil, err
	}

	return doc, nil
}

// ListDocuments returns the documents owned by one entity.
func (s *DocumentService) ListDocuments(ctx context.Context, entityType, entityID string) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at").
		Find(&docs).Error
	return docs, err
}

// DeleteDocument removes the document row and its stored object.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	var doc models.Document
	if err := s.DB.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.DB.WithContext(ctx).Delete(&models.Document{}, "id = ?", id).Error; err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, doc.ObjectKey); err != nil {
		s.Log.WithFields(logrus.Fields{
			"module":    "services",
			"funcName":  "DeleteDocument",
			"objectKey": doc.ObjectKey,
		}).Error(err.Error())
	}
	return nil
}
