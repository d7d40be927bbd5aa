package game

import (
	"fmt"
	"time"

	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Status is the overall state of a game. The numeric values are the
// persisted codes.
type Status int16

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusFinished
)

func StatusFromCode(code int16) (Status, error) {
	switch Status(code) {
	case StatusNotStarted, StatusInProgress, StatusFinished:
		return Status(code), nil
	}
	return StatusNotStarted, fmt.Errorf("invalid game status code: %d", code)
}

func (s Status) Code() int16 { return int16(s) }

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInProgress:
		return "InProgress"
	case StatusFinished:
		return "Finished"
	}
	return fmt.Sprintf("Status(%d)", int16(s))
}

// Lifecycle tracks a game through NOT_STARTED → IN_PROGRESS → FINISHED
// and stamps each transition with the injected clock.
//
// Invariants:
// - Finished is terminal
// - startedAt is set exactly when the game leaves NotStarted
type Lifecycle struct {
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
	startedAt  *time.Time
	finishedAt *time.Time
	clock      shared.Clock
}

// NewLifecycle creates a lifecycle in the NotStarted state
func NewLifecycle(clock shared.Clock) *Lifecycle {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	now := clock.Now()
	return &Lifecycle{
		status:    StatusNotStarted,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}
}

// RecoverLifecycle restores a lifecycle from persisted data
func RecoverLifecycle(
	clock shared.Clock,
	status Status,
	createdAt, updatedAt time.Time,
	startedAt, finishedAt *time.Time,
) *Lifecycle {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Lifecycle{
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		startedAt:  startedAt,
		finishedAt: finishedAt,
		clock:      clock,
	}
}

func (l *Lifecycle) Status() Status { return l.status }
func (l *Lifecycle) CreatedAt() time.Time { return l.createdAt }
func (l *Lifecycle) UpdatedAt() time.Time { return l.updatedAt }
func (l *Lifecycle) StartedAt() *time.Time { return l.startedAt }
func (l *Lifecycle) FinishedAt() *time.Time { return l.finishedAt }
func (l *Lifecycle) IsFinished() bool { return l.status == StatusFinished }

// Start moves a new game into play
func (l *Lifecycle) Start() error {
	if l.status != StatusNotStarted {
		return fmt.Errorf("cannot start from %s state", l.status)
	}
	now := l.clock.Now()
	l.status = StatusInProgress
	l.startedAt = &now
	l.updatedAt = now
	return nil
}

// Finish ends a game in progress
func (l *Lifecycle) Finish() error {
	if l.status != StatusInProgress {
		return fmt.Errorf("cannot finish from %s state", l.status)
	}
	now := l.clock.Now()
	l.status = StatusFinished
	l.finishedAt = &now
	l.updatedAt = now
	return nil
}

// Touch records activity that does not change the status
func (l *Lifecycle) Touch() {
	l.updatedAt = l.clock.Now()
}

// Duration is how long the game has been, or was, in play
func (l *Lifecycle) Duration() time.Duration {
	if l.startedAt == nil {
		return 0
	}
	end := l.clock.Now()
	if l.finishedAt != nil {
		end = *l.finishedAt
	}
	return end.Sub(*l.startedAt)
}
