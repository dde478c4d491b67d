// Package oracle defines the port to the external system that is
// authoritative for corporation membership and leadership.
package oracle

import "context"

// Member is one corporation member as reported by the oracle. Only the
// character id is consulted for grant validation; the name is passed through
// for display.
type Member struct {
	CharacterID   int64  `json:"character_id"`
	CharacterName string `json:"character_name"`
}

type MembershipOracle interface {
	// GetMembers returns the current member list of the corporation.
	GetMembers(ctx context.Context, corporationID int64) ([]Member, error)
	// GetCEO returns the character id of the corporation's CEO.
	GetCEO(ctx context.Context, corporationID int64) (int64, error)
}
