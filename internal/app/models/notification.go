package models

import "time"

// Notification represents one delivered message to one user, based on the
// 'notifications' table. RecipientUserID always references a real user:
// the dispatcher resolves teacher/student profiles to their linked account
// before writing and skips profiles without one.
type Notification struct {
	ID                int64                `json:"id" db:"id"`
	RecipientUserID   int64                `json:"recipientUserId" db:"recipient_user_id"`
	Title             string               `json:"title" db:"title"`
	Message           string               `json:"message" db:"message"`
	Category          NotificationCategory `json:"category" db:"category"`
	RelatedEntityID   *int64               `json:"relatedEntityId,omitempty" db:"related_entity_id"`
	RelatedEntityKind *EntityKind          `json:"relatedEntityKind,omitempty" db:"related_entity_kind"`
	Read              bool                 `json:"read" db:"read"`
	Link              *string              `json:"link,omitempty" db:"link"`
	// TriggerDate is set only for reminder notifications; together with the
	// recipient, category and related entity it forms the uniqueness key
	// that makes the daily trigger safely re-runnable.
	TriggerDate *time.Time `json:"-" db:"trigger_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
