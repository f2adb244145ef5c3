// Package tasks defines the events sent through Kafka.
package tasks

import (
	"fmt"
	"time"
)

// Event types.
const (
	TypeContentChanged     = "content_changed"
	TypeSubmissionReceived = "submission_received"
)

// Event actions.
const (
	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// Event is a change to site content or a new form submission.
type Event struct {
	Type       string    `json:"type"`
	Kind       string    `json:"kind"`
	ID         string    `json:"id"`
	Action     string    `json:"action,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key identifies the item the event is about. It is used as the Kafka message key and
// for the retry counter.
func (e Event) Key() string {
	return fmt.Sprintf("%s:%s", e.Kind, e.ID)
}

// ContentChanged builds an event for a catalog mutation.
func ContentChanged(kind string, id uint, action string) Event {
	return Event{
		Type:       TypeContentChanged,
		Kind:       kind,
		ID:         fmt.Sprint(id),
		Action:     action,
		OccurredAt: time.Now(),
	}
}

// SubmissionReceived builds an event for a new form submission.
func SubmissionReceived(kind, id string) Event {
	return Event{
		Type:       TypeSubmissionReceived,
		Kind:       kind,
		ID:         id,
		OccurredAt: time.Now(),
	}
}
