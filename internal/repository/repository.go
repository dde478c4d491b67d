package repository

import (
	"context"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
)

// Mutating methods that take an *domain.ActivityLogEntry persist the entity
// change and the audit entry in a single transaction; if either write fails,
// neither is committed.

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	// FindOpenByUserAndCorporation returns (nil, nil) when the user has no
	// pending or under_review application for the corporation.
	FindOpenByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	Update(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error
	// Delete removes the application; recommendations and activity log rows
	// cascade at the database level.
	Delete(ctx context.Context, id int64) error
}

type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error
	GetByID(ctx context.Context, id int64) (*domain.Recommendation, error)
	// GetByApplicationAndUser returns (nil, nil) when the user has not
	// recommended the application.
	GetByApplicationAndUser(ctx context.Context, applicationID, userID int64) (*domain.Recommendation, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.Recommendation, error)
	Update(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error
	// Delete writes the audit entry before removing the row, in one
	// transaction: if the log write fails the delete does not happen.
	Delete(ctx context.Context, id int64, entry *domain.ActivityLogEntry) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.HrNote) error
	GetByID(ctx context.Context, id int64) (*domain.HrNote, error)
	List(ctx context.Context, filter domain.NoteFilter) ([]domain.HrNote, error)
	ListBySubjectUser(ctx context.Context, subjectUserID int64) ([]domain.HrNote, error)
	Update(ctx context.Context, note *domain.HrNote) error
	Delete(ctx context.Context, id int64) error
}

type RoleRepository interface {
	// ReplaceActive deactivates any active role for the same
	// (corporation, user) pair and inserts role as the new active row,
	// in one transaction.
	ReplaceActive(ctx context.Context, role *domain.HrRole) error
	GetByID(ctx context.Context, id int64) (*domain.HrRole, error)
	Deactivate(ctx context.Context, id int64) error
	// GetActiveByUserAndCorporation returns (nil, nil) when no active row
	// exists. Expiry is not filtered here; callers check it lazily.
	GetActiveByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.HrRole, error)
	// ListActiveByUser returns active, non-expired roles, optionally
	// restricted to one corporation.
	ListActiveByUser(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error)
	ListByCorporation(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error)
	// ListUserCorporations returns the distinct corporations where the user
	// holds an active, non-expired role.
	ListUserCorporations(ctx context.Context, userID int64) ([]int64, error)
	// DeactivateExpired flips is_active on rows whose expires_at has passed
	// and returns the corporation id of every affected row.
	DeactivateExpired(ctx context.Context) ([]int64, error)
}

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *domain.ActivityLogEntry) error
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.ActivityLogEntry, error)
}
