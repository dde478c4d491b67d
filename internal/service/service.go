package service

import (
	"context"
	"time"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
)

// Caller identity is always explicit. The upstream session layer has already
// authenticated the user; nothing here infers identity from the context.

type ApplicationService interface {
	Submit(ctx context.Context, userID, characterID int64, characterName string, corporationID int64, text string) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter, callerUserID int64, isAdmin bool) ([]domain.Application, error)
	Get(ctx context.Context, applicationID, callerUserID int64, isAdmin bool) (*domain.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus, callerUserID, callerCharacterID int64, reviewNotes string, isAdmin bool) error
	Withdraw(ctx context.Context, applicationID, callerUserID, callerCharacterID int64) error
	Delete(ctx context.Context, applicationID int64) error
}

type RecommendationService interface {
	Add(ctx context.Context, applicationID, userID, characterID int64, characterName, text string, sentiment domain.RecommendationSentiment) (*domain.Recommendation, error)
	Update(ctx context.Context, recommendationID, callerUserID, callerCharacterID int64, text string, sentiment domain.RecommendationSentiment, isAdmin bool) error
	Delete(ctx context.Context, recommendationID, callerUserID, callerCharacterID int64, isAdmin bool) error
}

// NoteService performs no authorization of its own; the facade admits only
// verified admins.
type NoteService interface {
	Create(ctx context.Context, note *domain.HrNote) (*domain.HrNote, error)
	List(ctx context.Context, filter domain.NoteFilter) ([]domain.HrNote, error)
	GetBySubjectUser(ctx context.Context, subjectUserID int64) ([]domain.HrNote, error)
	Update(ctx context.Context, noteID int64, update domain.NoteUpdate) (*domain.HrNote, error)
	Delete(ctx context.Context, noteID int64) error
}

type RoleService interface {
	Grant(ctx context.Context, corporationID, userID, characterID int64, characterName string, role domain.HrRoleName, grantedBy int64, expiresAt *time.Time) (*domain.HrRole, error)
	Revoke(ctx context.Context, roleID int64) error
	GetRole(ctx context.Context, roleID int64) (*domain.HrRole, error)
	GetUserRoles(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error)
	GetCorporationRoles(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error)
	CheckPermission(ctx context.Context, userID, corporationID int64, required domain.HrRoleName) (bool, error)
	GetUserHrCorporations(ctx context.Context, userID int64) ([]int64, error)
	// CleanupExpired deactivates lapsed grants and returns how many rows it
	// touched. Permission checks already ignore expired rows; this keeps
	// reporting queries honest.
	CleanupExpired(ctx context.Context) (int, error)
}
