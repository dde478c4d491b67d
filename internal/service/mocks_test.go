package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/oracle"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, app, entry)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FindOpenByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.Application, error) {
	args := m.Called(ctx, userID, corporationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, app, entry)
	return args.Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecommendationRepo
type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) Create(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, rec, entry)
	return args.Error(0)
}
func (m *MockRecommendationRepo) GetByID(ctx context.Context, id int64) (*domain.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) GetByApplicationAndUser(ctx context.Context, applicationID, userID int64) (*domain.Recommendation, error) {
	args := m.Called(ctx, applicationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Recommendation, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}
func (m *MockRecommendationRepo) Update(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, rec, entry)
	return args.Error(0)
}
func (m *MockRecommendationRepo) Delete(ctx context.Context, id int64, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, id, entry)
	return args.Error(0)
}

// MockNoteRepo
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Create(ctx context.Context, note *domain.HrNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNoteRepo) GetByID(ctx context.Context, id int64) (*domain.HrNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrNote), args.Error(1)
}
func (m *MockNoteRepo) List(ctx context.Context, filter domain.NoteFilter) ([]domain.HrNote, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrNote), args.Error(1)
}
func (m *MockNoteRepo) ListBySubjectUser(ctx context.Context, subjectUserID int64) ([]domain.HrNote, error) {
	args := m.Called(ctx, subjectUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrNote), args.Error(1)
}
func (m *MockNoteRepo) Update(ctx context.Context, note *domain.HrNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNoteRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) ReplaceActive(ctx context.Context, role *domain.HrRole) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}
func (m *MockRoleRepo) GetByID(ctx context.Context, id int64) (*domain.HrRole, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrRole), args.Error(1)
}
func (m *MockRoleRepo) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRoleRepo) GetActiveByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.HrRole, error) {
	args := m.Called(ctx, userID, corporationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrRole), args.Error(1)
}
func (m *MockRoleRepo) ListActiveByUser(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	args := m.Called(ctx, userID, corporationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrRole), args.Error(1)
}
func (m *MockRoleRepo) ListByCorporation(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	args := m.Called(ctx, corporationID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrRole), args.Error(1)
}
func (m *MockRoleRepo) ListUserCorporations(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockRoleRepo) DeactivateExpired(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockActivityLogRepo
type MockActivityLogRepo struct {
	mock.Mock
}

func (m *MockActivityLogRepo) Create(ctx context.Context, entry *domain.ActivityLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockActivityLogRepo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.ActivityLogEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLogEntry), args.Error(1)
}

// MockRoleService
type MockRoleService struct {
	mock.Mock
}

func (m *MockRoleService) Grant(ctx context.Context, corporationID, userID, characterID int64, characterName string, role domain.HrRoleName, grantedBy int64, expiresAt *time.Time) (*domain.HrRole, error) {
	args := m.Called(ctx, corporationID, userID, characterID, characterName, role, grantedBy, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrRole), args.Error(1)
}
func (m *MockRoleService) Revoke(ctx context.Context, roleID int64) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}
func (m *MockRoleService) GetRole(ctx context.Context, roleID int64) (*domain.HrRole, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HrRole), args.Error(1)
}
func (m *MockRoleService) GetUserRoles(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	args := m.Called(ctx, userID, corporationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrRole), args.Error(1)
}
func (m *MockRoleService) GetCorporationRoles(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	args := m.Called(ctx, corporationID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HrRole), args.Error(1)
}
func (m *MockRoleService) CheckPermission(ctx context.Context, userID, corporationID int64, required domain.HrRoleName) (bool, error) {
	args := m.Called(ctx, userID, corporationID, required)
	return args.Bool(0), args.Error(1)
}
func (m *MockRoleService) GetUserHrCorporations(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
func (m *MockRoleService) CleanupExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockOracle
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) GetMembers(ctx context.Context, corporationID int64) ([]oracle.Member, error) {
	args := m.Called(ctx, corporationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]oracle.Member), args.Error(1)
}
func (m *MockOracle) GetCEO(ctx context.Context, corporationID int64) (int64, error) {
	args := m.Called(ctx, corporationID)
	return args.Get(0).(int64), args.Error(1)
}
