package oracle

import "context"

// Static is an in-memory oracle for tests and local development.
type Static struct {
	Members map[int64][]Member
	CEOs    map[int64]int64
}

func (s *Static) GetMembers(ctx context.Context, corporationID int64) ([]Member, error) {
	members := s.Members[corporationID]
	out := make([]Member, len(members))
	copy(out, members)
	return out, nil
}

func (s *Static) GetCEO(ctx context.Context, corporationID int64) (int64, error) {
	return s.CEOs[corporationID], nil
}
