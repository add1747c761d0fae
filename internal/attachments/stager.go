// Package attachments manages document files across the entity create
// boundary. Files picked before the owning entity has an id are held in a
// staging area and flushed as uploads once the id is known; files picked for
// an existing entity upload immediately.
package attachments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// State of an attachment slot.
type State string

const (
	StateStaged    State = "staged"
	StateUploading State = "uploading"
	StateCommitted State = "committed"
)

// File is the content of a picked file.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadRequest is one document upload against the external storage and the
// documents table.
type UploadRequest struct {
	EntityType   string
	EntityID     string
	DocumentType string
	Label        string
	File         File
}

// Uploader commits one file as a Document row. Implemented by the document
// service; faked in tests.
type Uploader interface {
	Upload(ctx context.Context, req UploadRequest) (*models.Document, error)
}

// Staged is a file held in the staging area, waiting for an entity id.
type Staged struct {
	DocType  string    `json:"docType"`
	Label    string    `json:"label,omitempty"`
	FileName string    `json:"fileName"`
	State    State     `json:"state"`
	StagedAt time.Time `json:"stagedAt"`

	contentType string
	content     []byte
}

// Stager holds the attachments of one form session. Single-valued docTypes
// occupy at most one slot each; the "additional" docType accumulates an
// ordered list. A Stager is bound to an entity id either at construction
// (edit mode) or by Flush (create mode).
type Stager struct {
	mu         sync.Mutex
	entityType string
	entityID   string
	uploader   Uploader
	log        *logrus.Logger

	slots     map[string]*Staged
	slotOrder []string
	extra     []*Staged
	committed []*models.Document
}

// New creates a stager for an entity that does not exist yet.
func New(entityType string, uploader Uploader, log *logrus.Logger) *Stager {
	return &Stager{
		entityType: entityType,
		uploader:   uploader,
		log:        log,
		slots:      make(map[string]*Staged),
	}
}

// NewBound creates a stager for an entity that already has an id; every
// Stage call uploads immediately.
func NewBound(entityType, entityID string, uploader Uploader, log *logrus.Logger) *Stager {
	s := New(entityType, uploader, log)
	s.entityID = entityID
	return s
}

// Stage accepts a picked file. When the stager is bound the file is uploaded
// at once and the resulting document returned; on upload failure the file
// stays staged and the error is returned. When unbound the file is staged
// and a nil document returned. Staging a single-valued docType replaces any
// previous staged file for that type.
func (s *Stager) Stage(ctx context.Context, docType string, file File, label string) (*models.Document, error) {
	if !models.ValidDocType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}

	entry := &Staged{
		DocType:     docType,
		Label:       label,
		FileName:    file.Name,
		State:       StateStaged,
		StagedAt:    time.Now().UTC(),
		contentType: file.ContentType,
		content:     file.Content,
	}

	s.mu.Lock()
	s.put(entry)
	bound := s.entityID != ""
	s.mu.Unlock()

	if !bound {
		return nil, nil
	}

	doc, err := s.upload(ctx, entry)
	if err != nil {
		// The slot stays staged so the user can retry or remove it.
		return nil, err
	}
	return doc, nil
}

// put places entry into its slot under the lock.
func (s *Stager) put(entry *Staged) {
	if entry.DocType == models.DocTypeAdditional {
		s.extra = append(s.extra, entry)
		return
	}
	if _, exists := s.slots[entry.DocType]; !exists {
		s.slotOrder = append(s.slotOrder, entry.DocType)
	}
	s.slots[entry.DocType] = entry
}

// upload commits one staged entry and removes it from staging on success.
func (s *Stager) upload(ctx context.Context, entry *Staged) (*models.Document, error) {
	s.mu.Lock()
	entry.State = StateUploading
	req := UploadRequest{
		EntityType:   s.entityType,
		EntityID:     s.entityID,
		DocumentType: entry.DocType,
		Label:        entry.Label,
		File:         File{Name: entry.FileName, ContentType: entry.contentType, Content: entry.content},
	}
	s.mu.Unlock()

	doc, err := s.uploader.Upload(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		entry.State = StateStaged
		return nil, err
	}
	entry.State = StateCommitted
	s.drop(entry)
	s.committed = append(s.committed, doc)
	return doc, nil
}

// drop removes entry from staging under the lock.
func (s *Stager) drop(entry *Staged) {
	if entry.DocType == models.DocTypeAdditional {
		for i, e := range s.extra {
			if e == entry {
				s.extra = append(s.extra[:i], s.extra[i+1:]...)
				return
			}
		}
		return
	}
	if s.slots[entry.DocType] == entry {
		delete(s.slots, entry.DocType)
		for i, dt := range s.slotOrder {
			if dt == entry.DocType {
				s.slotOrder = append(s.slotOrder[:i], s.slotOrder[i+1:]...)
				return
			}
		}
	}
}

// Flush binds the stager to entityID and uploads everything staged, in
// insertion order, one upload at a time. A failed upload is logged and
// dropped from the batch; the remaining uploads still run. The owning entity
// is already created by the time Flush is called, so a partial flush must
// not surface as a failure of the whole submission.
func (s *Stager) Flush(ctx context.Context, entityID string) []*models.Document {
	s.mu.Lock()
	s.entityID = entityID
	pending := make([]*Staged, 0, len(s.slotOrder)+len(s.extra))
	for _, dt := range s.slotOrder {
		pending = append(pending, s.slots[dt])
	}
	pending = append(pending, s.extra...)
	s.mu.Unlock()

	var committed []*models.Document
	for _, entry := range pending {
		doc, err := s.upload(ctx, entry)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"module":   "attachments",
				"funcName": "Flush",
				"entity":   s.entityType + "/" + entityID,
				"docType":  entry.DocType,
				"fileName": entry.FileName,
			}).Error(err.Error())
			s.mu.Lock()
			s.drop(entry)
			s.mu.Unlock()
			continue
		}
		committed = append(committed, doc)
	}
	return committed
}

// Remove discards the staged file for a single-valued docType before flush.
// Returns false when nothing was staged; committed documents are unaffected.
func (s *Stager) Remove(docType string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.slots[docType]
	if !ok || entry.State != StateStaged {
		return false
	}
	s.drop(entry)
	return true
}

// RemoveAdditional discards one entry of the multi-valued list by index.
func (s *Stager) RemoveAdditional(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.extra) {
		return false
	}
	if s.extra[index].State != StateStaged {
		return false
	}
	s.extra = append(s.extra[:index], s.extra[index+1:]...)
	return true
}

// StagedEntries lists every staged entry: single slots in staging order,
// then the additional list in insertion order.
func (s *Stager) StagedEntries() []Staged {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Staged, 0, len(s.slotOrder)+len(s.extra))
	for _, dt := range s.slotOrder {
		out = append(out, *s.slots[dt])
	}
	for _, e := range s.extra {
		out = append(out, *e)
	}
	return out
}

// Open returns the staged content for preview. For the additional docType
// the index selects the list entry; it is ignored otherwise.
func (s *Stager) Open(docType string, index int) (File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entry *Staged
	if docType == models.DocTypeAdditional {
		if index < 0 || index >= len(s.extra) {
			return File{}, false
		}
		entry = s.extra[index]
	} else {
		entry = s.slots[docType]
	}
	if entry == nil {
		return File{}, false
	}
	return File{Name: entry.FileName, ContentType: entry.contentType, Content: entry.content}, true
}

// Committed returns the documents uploaded through this stager.
func (s *Stager) Committed() []*models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Document, len(s.committed))
	copy(out, s.committed)
	return out
}
