package notify

import (
	"sync"
	"time"
)

// Level classifies a notification for display.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is a transient, self-expiring status message.
type Notification struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	// DisplayTTL matches the toast auto-dismiss delay in the page shell.
	DisplayTTL = 3 * time.Second
	// MaxPending caps concurrent notifications; the oldest is evicted first.
	MaxPending = 4
)

// Queue holds pending notifications for one session. Entries expire after
// DisplayTTL and the queue never grows past MaxPending.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push appends a notification, evicting the oldest entry when full.
func (q *Queue) Push(message string, level Level) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.expireLocked()
	if len(q.items) >= MaxPending {
		q.items = q.items[1:]
	}
	q.items = append(q.items, Notification{
		Message:   message,
		Level:     level,
		CreatedAt: q.now(),
	})
}

// Drain returns all pending notifications and clears the queue.
// Expired entries are dropped, not returned.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.expireLocked()
	out := q.items
	q.items = nil
	return out
}

// Pending reports how many notifications are currently queued.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.expireLocked()
	return len(q.items)
}

func (q *Queue) expireLocked() {
	cutoff := q.now().Add(-DisplayTTL)
	kept := q.items[:0]
	for _, n := range q.items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	q.items = kept
}
