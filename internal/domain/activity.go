package domain

import "time"

// Activity log actions. One entry is written per state-changing operation
// on an application, in the same transaction as the change itself.
const (
	ActionSubmitted             = "submitted"
	ActionStatusChanged         = "status_changed"
	ActionWithdrawn             = "withdrawn"
	ActionRecommendationAdded   = "recommendation_added"
	ActionRecommendationUpdated = "recommendation_updated"
	ActionRecommendationDeleted = "recommendation_deleted"
)

// ActivityLogEntry is an immutable audit record. Entries are never updated
// or deleted except by cascade when the parent application is deleted.
type ActivityLogEntry struct {
	ID            int64             `json:"id"`
	ApplicationID int64             `json:"application_id"`
	UserID        int64             `json:"user_id"`
	CharacterID   int64             `json:"character_id"`
	Action        string            `json:"action"`
	PreviousValue *string           `json:"previous_value,omitempty"`
	NewValue      *string           `json:"new_value,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
