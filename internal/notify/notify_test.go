package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueuePushAndDrain(t *testing.T) {
	q := NewQueue()
	q.Push("Preferences saved!", LevelSuccess)
	q.Push("Network error. Please try again.", LevelError)

	got := q.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, "Preferences saved!", got[0].Message)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, LevelError, got[1].Level)

	// Drain clears the queue
	assert.Empty(t, q.Drain())
}

func TestQueueEvictsOldestAtCap(t *testing.T) {
	q := NewQueue()
	q.Push("first", LevelInfo)
	q.Push("second", LevelInfo)
	q.Push("third", LevelInfo)
	q.Push("fourth", LevelInfo)
	q.Push("fifth", LevelInfo)

	got := q.Drain()
	assert.Len(t, got, MaxPending)
	assert.Equal(t, "second", got[0].Message)
	assert.Equal(t, "fifth", got[len(got)-1].Message)
}

func TestQueueExpiresEntries(t *testing.T) {
	now := time.Now()
	q := NewQueue()
	q.now = func() time.Time { return now }

	q.Push("stale", LevelWarning)
	assert.Equal(t, 1, q.Pending())

	q.now = func() time.Time { return now.Add(DisplayTTL + time.Second) }
	assert.Equal(t, 0, q.Pending())
	assert.Empty(t, q.Drain())
}
