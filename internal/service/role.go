package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/cache"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/logger"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/oracle"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

// RoleCacheTTL bounds how stale a corporation role listing may be when no
// grant or revoke has touched it. Writes invalidate synchronously, so
// staleness after a write is zero.
const RoleCacheTTL = 5 * time.Minute

type roleService struct {
	roleRepo repository.RoleRepository
	oracle   oracle.MembershipOracle
	cache    *cache.TTLCache[[]domain.HrRole]
	now      func() time.Time
}

func NewRoleService(roleRepo repository.RoleRepository, membershipOracle oracle.MembershipOracle) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		oracle:   membershipOracle,
		cache:    cache.New[[]domain.HrRole](RoleCacheTTL),
		now:      time.Now,
	}
}

func corporationRolesKey(corporationID int64, activeOnly bool) string {
	return fmt.Sprintf("%d:%t", corporationID, activeOnly)
}

// invalidateCorporation drops both cache variants for the corporation. Must
// be called after every grant or revoke touching it.
func (s *roleService) invalidateCorporation(corporationID int64) {
	s.cache.Invalidate(
		corporationRolesKey(corporationID, true),
		corporationRolesKey(corporationID, false),
	)
}

func (s *roleService) Grant(ctx context.Context, corporationID, userID, characterID int64, characterName string, role domain.HrRoleName, grantedBy int64, expiresAt *time.Time) (*domain.HrRole, error) {
	if role.Level() == 0 {
		return nil, domain.Validationf("unknown role %q", role)
	}

	// The oracle is consulted before anything is written: a failed lookup
	// aborts the grant with no partial state.
	members, err := s.oracle.GetMembers(ctx, corporationID)
	if err != nil {
		return nil, fmt.Errorf("membership lookup for corporation %d failed: %w", corporationID, err)
	}
	isMember := false
	for _, m := range members {
		if m.CharacterID == characterID {
			isMember = true
			break
		}
	}
	if !isMember {
		return nil, domain.Validationf("character %d is not a member of corporation %d", characterID, corporationID)
	}

	grant := &domain.HrRole{
		CorporationID: corporationID,
		UserID:        userID,
		CharacterID:   characterID,
		CharacterName: characterName,
		Role:          role,
		GrantedBy:     grantedBy,
		ExpiresAt:     expiresAt,
	}
	if err := s.roleRepo.ReplaceActive(ctx, grant); err != nil {
		return nil, err
	}
	s.invalidateCorporation(corporationID)

	logger.Info("hr role granted", "corporation_id", corporationID, "user_id", userID, "role", role, "granted_by", grantedBy)
	return grant, nil
}

func (s *roleService) Revoke(ctx context.Context, roleID int64) error {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return err
	}
	if err := s.roleRepo.Deactivate(ctx, roleID); err != nil {
		return err
	}
	s.invalidateCorporation(role.CorporationID)

	logger.Info("hr role revoked", "role_id", roleID, "corporation_id", role.CorporationID, "user_id", role.UserID)
	return nil
}

func (s *roleService) GetRole(ctx context.Context, roleID int64) (*domain.HrRole, error) {
	return s.roleRepo.GetByID(ctx, roleID)
}

func (s *roleService) GetUserRoles(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	return s.roleRepo.ListActiveByUser(ctx, userID, corporationID)
}

func (s *roleService) GetCorporationRoles(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	key := corporationRolesKey(corporationID, activeOnly)
	if roles, ok := s.cache.Get(key); ok {
		return roles, nil
	}
	roles, err := s.roleRepo.ListByCorporation(ctx, corporationID, activeOnly)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, roles)
	return roles, nil
}

func (s *roleService) CheckPermission(ctx context.Context, userID, corporationID int64, required domain.HrRoleName) (bool, error) {
	role, err := s.roleRepo.GetActiveByUserAndCorporation(ctx, userID, corporationID)
	if err != nil {
		return false, err
	}
	if role == nil {
		return false, nil
	}
	// Lazy expiry: an expired grant denies even if the sweep has not
	// deactivated the row yet.
	if role.Expired(s.now()) {
		return false, nil
	}
	return role.Role.AtLeast(required), nil
}

func (s *roleService) GetUserHrCorporations(ctx context.Context, userID int64) ([]int64, error) {
	return s.roleRepo.ListUserCorporations(ctx, userID)
}

func (s *roleService) CleanupExpired(ctx context.Context) (int, error) {
	corps, err := s.roleRepo.DeactivateExpired(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[int64]struct{}, len(corps))
	for _, corporationID := range corps {
		if _, ok := seen[corporationID]; ok {
			continue
		}
		seen[corporationID] = struct{}{}
		s.invalidateCorporation(corporationID)
	}
	return len(corps), nil
}
