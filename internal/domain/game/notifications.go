package game

import "github.com/spacerover/spacerover-go/internal/domain/board"

// NotificationKind tags a player-facing interrupt
type NotificationKind int

const (
	// NotificationCrash announces a destroyed ship
	NotificationCrash NotificationKind = iota
	// NotificationHalfGravity asks whether to accept an optional half gravity pull
	NotificationHalfGravity
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationCrash:
		return "crash"
	case NotificationHalfGravity:
		return "half_gravity"
	}
	return "unknown"
}

// Notification is one queued interrupt
type Notification struct {
	Kind    NotificationKind
	Ship    string
	Message string
	Well    board.Contact
}

// NotificationQueue is a FIFO of interrupts. The head is the one being
// presented; at most one is presented at a time.
type NotificationQueue struct {
	items []Notification
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

// Push queues a notification. Returns true when it is presented right away
// because nothing else was showing.
func (q *NotificationQueue) Push(n Notification) bool {
	q.items = append(q.items, n)
	return len(q.items) == 1
}

// Current returns the notification being presented
func (q *NotificationQueue) Current() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[0], true
}

// Dismiss pops the presented notification and returns the next one to
// present, if any
func (q *NotificationQueue) Dismiss() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	q.items[0] = Notification{}
	q.items = q.items[1:]
	return q.Current()
}

// HasPending reports whether anything is queued or being presented
func (q *NotificationQueue) HasPending() bool {
	return len(q.items) > 0
}

func (q *NotificationQueue) Len() int {
	return len(q.items)
}
