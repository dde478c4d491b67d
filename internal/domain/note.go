package domain

import "time"

type NoteType string

const (
	NoteTypeGeneral         NoteType = "general"
	NoteTypeWarning         NoteType = "warning"
	NoteTypePositive        NoteType = "positive"
	NoteTypeIncident        NoteType = "incident"
	NoteTypeBackgroundCheck NoteType = "background_check"
)

func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeGeneral, NoteTypeWarning, NoteTypePositive, NoteTypeIncident, NoteTypeBackgroundCheck:
		return true
	}
	return false
}

type NotePriority string

const (
	PriorityLow      NotePriority = "low"
	PriorityNormal   NotePriority = "normal"
	PriorityHigh     NotePriority = "high"
	PriorityCritical NotePriority = "critical"
)

func (p NotePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// HrNote is a confidential annotation about a user, visible to admins only.
// Author attribution is fixed at creation time.
type HrNote struct {
	ID                  int64             `json:"id"`
	SubjectUserID       int64             `json:"subject_user_id"`
	SubjectCharacterID  *int64            `json:"subject_character_id,omitempty"`
	AuthorID            int64             `json:"author_id"`
	AuthorCharacterID   int64             `json:"author_character_id"`
	AuthorCharacterName string            `json:"author_character_name"`
	NoteText            string            `json:"note_text"`
	NoteType            NoteType          `json:"note_type"`
	Priority            NotePriority      `json:"priority"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type NoteFilter struct {
	SubjectUserID *int64
	NoteType      NoteType
	Priority      NotePriority
	Limit         int32
	Offset        int32
}

// NoteUpdate carries the mutable subset of a note. Nil fields are left as-is.
type NoteUpdate struct {
	NoteText *string
	NoteType *NoteType
	Priority *NotePriority
	Metadata map[string]string
}
