package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// IsOpen reports whether the application is still awaiting a decision.
// Reviewers may write statuses outside the listed constants; only the two
// open statuses participate in the duplicate guard and recommendation gating.
func (s ApplicationStatus) IsOpen() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusUnderReview
}

// Application is a request by a character to join a corporation.
type Application struct {
	ID              int64             `json:"id"`
	CorporationID   int64             `json:"corporation_id"`
	UserID          int64             `json:"user_id"`
	CharacterID     int64             `json:"character_id"`
	CharacterName   string            `json:"character_name"`
	ApplicationText string            `json:"application_text"`
	Status          ApplicationStatus `json:"status"`
	ReviewedBy      *int64            `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	ReviewNotes     *string           `json:"review_notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ApplicationDetail is an application together with its recommendations.
// ActivityLog is populated only for callers with HR or admin visibility.
type ApplicationDetail struct {
	Application
	Recommendations []Recommendation   `json:"recommendations"`
	ActivityLog     []ActivityLogEntry `json:"activity_log,omitempty"`
}

// ApplicationScope restricts a listing to rows the caller may see: their own
// applications, plus applications to corporations where they hold an HR role.
type ApplicationScope struct {
	UserID         int64
	HrCorporations []int64
}

type ApplicationFilter struct {
	CorporationID *int64
	UserID        *int64
	Status        ApplicationStatus
	Limit         int32
	Offset        int32

	// Scope is nil for admin callers (no restriction). For everyone else it
	// is applied as a disjunctive SQL predicate so pagination stays correct.
	Scope *ApplicationScope
}
