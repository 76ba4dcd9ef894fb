package contact

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/scheduler"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

// ErrInvalidFormID is returned for ids that were never issued by a Registry.
var ErrInvalidFormID = errors.New("contact: invalid form id")

// SweepTaskName is the scheduler task that evicts idle form instances.
const SweepTaskName = "contact.sweep"

// Registry holds one Controller per page load, in memory only.
type Registry struct {
	sender email.Sender
	log    *slog.Logger
	ttl    time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	forms map[string]*Controller
}

// NewRegistry creates an empty registry.
func NewRegistry(sender email.Sender, cfg *config.Config, log *slog.Logger) *Registry {
	return &Registry{
		sender: sender,
		log:    log,
		ttl:    cfg.Contact.FormTTL,
		now:    time.Now,
		forms:  make(map[string]*Controller),
	}
}

// Get returns the instance for id if it is still held.
func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.forms[id]
	return c, ok
}

// GetOrCreate returns the instance for id. Instances are created idle on
// first use, which also recreates one that was swept. The id must be a UUID.
func (r *Registry) GetOrCreate(id string) (*Controller, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidFormID
	}

	if c, ok := r.Get(id); ok {
		return c, nil
	}

	r.mu.Lock()
	if c, ok := r.forms[id]; ok {
		r.mu.Unlock()
		return c, nil
	}
	c := newController(id, r.sender, r.log, r.now)
	r.forms[id] = c
	n := len(r.forms)
	r.mu.Unlock()

	FormsActive.Set(float64(n))
	r.log.Debug("created contact form instance", logger.Scope("contact"), slog.String("form_id", id))
	return c, nil
}

// Len returns the number of instances held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}

// Sweep evicts instances untouched for longer than the TTL. Instances that are
// submitting are kept. It returns the number evicted.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	removed := 0
	for id, c := range r.forms {
		if c.expired(now, r.ttl) {
			delete(r.forms, id)
			removed++
		}
	}
	n := len(r.forms)
	r.mu.Unlock()

	FormsActive.Set(float64(n))
	FormsSwept.Add(float64(removed))

	if removed > 0 {
		r.log.Info("swept idle contact forms",
			logger.Scope("contact"),
			slog.Int("removed", removed),
			slog.Int("remaining", n))
	}
	return removed
}

// RegisterSweep schedules Sweep on CONTACT_SWEEP_SCHEDULE.
func RegisterSweep(s *scheduler.Scheduler, r *Registry, cfg *config.Config) error {
	return s.AddCronTask(SweepTaskName, cfg.Contact.SweepSchedule, func(ctx context.Context) error {
		r.Sweep(r.now())
		return nil
	})
}
