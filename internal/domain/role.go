package domain

import "time"

type HrRoleName string

const (
	HrRoleViewer   HrRoleName = "hr_viewer"
	HrRoleReviewer HrRoleName = "hr_reviewer"
	HrRoleAdmin    HrRoleName = "hr_admin"
)

var roleLevels = map[HrRoleName]int{
	HrRoleViewer:   1,
	HrRoleReviewer: 2,
	HrRoleAdmin:    3,
}

// Level returns the position of the role in the hierarchy, or 0 for an
// unknown role name.
func (r HrRoleName) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether r grants everything required does or more.
func (r HrRoleName) AtLeast(required HrRoleName) bool {
	return r.Level() > 0 && r.Level() >= roleLevels[required]
}

// HrRole is a grant of one hierarchy level to a user, scoped to a single
// corporation. Superseded grants are deactivated rather than deleted so the
// grant history stays auditable.
type HrRole struct {
	ID            int64      `json:"id"`
	CorporationID int64      `json:"corporation_id"`
	UserID        int64      `json:"user_id"`
	CharacterID   int64      `json:"character_id"`
	CharacterName string     `json:"character_name"`
	Role          HrRoleName `json:"role"`
	GrantedBy     int64      `json:"granted_by"`
	GrantedAt     time.Time  `json:"granted_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Expired reports whether the grant has lapsed. Expiry is lazy: an expired
// row may still carry is_active=true until the cleanup sweep flips it.
func (r *HrRole) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && r.ExpiresAt.Before(now)
}
