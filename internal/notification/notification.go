// Package notification holds the workbench's toast queue and mirrors
// selected toasts to the desktop via beeep.
package notification

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/facade/internal/logger"
)

// DefaultDuration is how long a toast stays up unless dismissed.
const DefaultDuration = 5 * time.Second

// Kind is the severity of a notification.
type Kind int

const (
	Info Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "info"
}

// Notification is a single toast.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Queue holds live notifications in push order. Each notification has
// its own deadline measured from its push time.
//
// Queue is not safe for concurrent use; it is owned by the Bubble Tea
// model and only touched from Update.
type Queue struct {
	items    []Notification
	duration time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithDuration sets the lifetime of new notifications.
func WithDuration(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.duration = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		duration: DefaultDuration,
		now:      time.Now,
		log:      logger.WithComponent("notification"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Duration returns the lifetime given to new notifications.
func (q *Queue) Duration() time.Duration { return q.duration }

// Push appends a notification and returns it. The caller is responsible
// for scheduling expiry (see Expire and Dismiss).
func (q *Queue) Push(message string, kind Kind) Notification {
	now := q.now()
	n := Notification{
		ID:        q.newID(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(q.duration),
	}
	q.items = append(q.items, n)
	q.log.Debug("pushed", "id", n.ID, "kind", kind.String(), "message", message)
	return n
}

// Dismiss removes the notification with id. Removing an id that is not
// live is a no-op, so a manual dismiss racing its own expiry is safe.
func (q *Queue) Dismiss(id string) bool {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Expire removes every notification whose deadline is at or before now
// and returns how many were removed.
func (q *Queue) Expire(now time.Time) int {
	kept := q.items[:0:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	q.items = kept
	return removed
}

// Live returns a copy of the live notifications in push order.
func (q *Queue) Live() []Notification {
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of live notifications.
func (q *Queue) Len() int { return len(q.items) }

// newID returns a UUID not shared by any live notification.
func (q *Queue) newID() string {
	for {
		id := uuid.NewString()
		if !q.has(id) {
			return id
		}
	}
}

func (q *Queue) has(id string) bool {
	for _, n := range q.items {
		if n.ID == id {
			return true
		}
	}
	return false
}
