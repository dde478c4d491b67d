package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
)

// stubRoles implements service.RoleService; only CleanupExpired matters here.
type stubRoles struct {
	cleanups int
	err      error
	panics   bool
}

func (s *stubRoles) Grant(ctx context.Context, corporationID, userID, characterID int64, characterName string, role domain.HrRoleName, grantedBy int64, expiresAt *time.Time) (*domain.HrRole, error) {
	return nil, nil
}
func (s *stubRoles) Revoke(ctx context.Context, roleID int64) error { return nil }
func (s *stubRoles) GetRole(ctx context.Context, roleID int64) (*domain.HrRole, error) {
	return nil, nil
}
func (s *stubRoles) GetUserRoles(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	return nil, nil
}
func (s *stubRoles) GetCorporationRoles(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	return nil, nil
}
func (s *stubRoles) CheckPermission(ctx context.Context, userID, corporationID int64, required domain.HrRoleName) (bool, error) {
	return false, nil
}
func (s *stubRoles) GetUserHrCorporations(ctx context.Context, userID int64) ([]int64, error) {
	return nil, nil
}
func (s *stubRoles) CleanupExpired(ctx context.Context) (int, error) {
	if s.panics {
		panic("boom")
	}
	s.cleanups++
	return 2, s.err
}

func TestSweepExpiredRoles(t *testing.T) {
	t.Run("RunsCleanup", func(t *testing.T) {
		roles := &stubRoles{}
		jr := NewJobRunner(roles, nil)
		jr.SweepExpiredRoles()
		assert.Equal(t, 1, roles.cleanups)
	})

	t.Run("RecoversFromPanic", func(t *testing.T) {
		jr := NewJobRunner(&stubRoles{panics: true}, nil)
		assert.NotPanics(t, jr.SweepExpiredRoles)
	})
}
