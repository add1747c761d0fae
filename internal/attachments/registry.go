package attachments

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Registry keeps the per-draft stagers. A draft is one form session on the
// console: it is created when the form opens, flushed when the entity is
// created, and reaped by TTL when abandoned. Staged files of a reaped draft
// are gone; there is no recovery queue.
type Registry struct {
	mu       sync.Mutex
	drafts   map[string]*draft
	ttl      time.Duration
	uploader Uploader
	log      *logrus.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

type draft struct {
	stager    *Stager
	expiresAt time.Time
}

// DefaultTTL is how long an untouched draft survives.
const DefaultTTL = 2 * time.Hour

// NewRegistry creates a registry and starts its reaper.
func NewRegistry(uploader Uploader, log *logrus.Logger, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	r := &Registry{
		drafts:   make(map[string]*draft),
		ttl:      ttl,
		uploader: uploader,
		log:      log,
		stop:     make(chan struct{}),
	}
	go r.reap()
	return r
}

// Create opens a new draft for an entity of the given type and returns its
// id.
func (r *Registry) Create(entityType string) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.drafts[id] = &draft{
		stager:    New(entityType, r.uploader, r.log),
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()
	return id
}

// Get returns the stager of a live draft and extends its lease.
func (r *Registry) Get(id string) (*Stager, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, false
	}
	d.expiresAt = time.Now().Add(r.ttl)
	return d.stager, true
}

// Discard drops a draft and everything staged in it.
func (r *Registry) Discard(id string) {
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
}

// Close stops the reaper.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Registry) reap() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for id, d := range r.drafts {
				if now.After(d.expiresAt) {
					delete(r.drafts, id)
					r.log.WithFields(logrus.Fields{
						"module":   "attachments",
						"funcName": "reap",
						"draftId":  id,
					}).Warn("draft expired with staged attachments discarded")
				}
			}
			r.mu.Unlock()
		}
	}
}
