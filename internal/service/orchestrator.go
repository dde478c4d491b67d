package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/oracle"
)

// Identity describes the already-authenticated caller as supplied by the
// session layer. CharacterIDs lists every character linked to the account;
// CharacterID is the one the caller is currently acting as.
type Identity struct {
	UserID       int64
	CharacterID  int64
	CharacterIDs []int64
	IsAdmin      bool
}

// HR is the facade the transport layer talks to. It owns the caller-side
// gates that sit above the individual services: admin-only surfaces, and the
// admin-or-CEO precondition on role management.
type HR struct {
	Applications    ApplicationService
	Recommendations RecommendationService
	Notes           NoteService
	Roles           RoleService

	oracle oracle.MembershipOracle
}

func NewHR(applications ApplicationService, recommendations RecommendationService, notes NoteService, roles RoleService, membershipOracle oracle.MembershipOracle) *HR {
	return &HR{
		Applications:    applications,
		Recommendations: recommendations,
		Notes:           notes,
		Roles:           roles,
		oracle:          membershipOracle,
	}
}

func (h *HR) SubmitApplication(ctx context.Context, caller Identity, corporationID int64, characterName, text string) (*domain.Application, error) {
	return h.Applications.Submit(ctx, caller.UserID, caller.CharacterID, characterName, corporationID, text)
}

func (h *HR) ListApplications(ctx context.Context, caller Identity, filter domain.ApplicationFilter) ([]domain.Application, error) {
	return h.Applications.List(ctx, filter, caller.UserID, caller.IsAdmin)
}

func (h *HR) GetApplication(ctx context.Context, caller Identity, applicationID int64) (*domain.ApplicationDetail, error) {
	return h.Applications.Get(ctx, applicationID, caller.UserID, caller.IsAdmin)
}

func (h *HR) UpdateApplicationStatus(ctx context.Context, caller Identity, applicationID int64, status domain.ApplicationStatus, reviewNotes string) error {
	return h.Applications.UpdateStatus(ctx, applicationID, status, caller.UserID, caller.CharacterID, reviewNotes, caller.IsAdmin)
}

func (h *HR) WithdrawApplication(ctx context.Context, caller Identity, applicationID int64) error {
	return h.Applications.Withdraw(ctx, applicationID, caller.UserID, caller.CharacterID)
}

func (h *HR) DeleteApplication(ctx context.Context, caller Identity, applicationID int64) error {
	if !caller.IsAdmin {
		return domain.Forbiddenf("deleting applications requires site admin")
	}
	return h.Applications.Delete(ctx, applicationID)
}

func (h *HR) AddRecommendation(ctx context.Context, caller Identity, applicationID int64, characterName, text string, sentiment domain.RecommendationSentiment) (*domain.Recommendation, error) {
	return h.Recommendations.Add(ctx, applicationID, caller.UserID, caller.CharacterID, characterName, text, sentiment)
}

func (h *HR) UpdateRecommendation(ctx context.Context, caller Identity, recommendationID int64, text string, sentiment domain.RecommendationSentiment) error {
	return h.Recommendations.Update(ctx, recommendationID, caller.UserID, caller.CharacterID, text, sentiment, caller.IsAdmin)
}

func (h *HR) DeleteRecommendation(ctx context.Context, caller Identity, recommendationID int64) error {
	return h.Recommendations.Delete(ctx, recommendationID, caller.UserID, caller.CharacterID, caller.IsAdmin)
}

// Notes are confidential; every operation requires site admin.

func (h *HR) CreateNote(ctx context.Context, caller Identity, note *domain.HrNote) (*domain.HrNote, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbiddenf("HR notes require site admin")
	}
	note.AuthorID = caller.UserID
	note.AuthorCharacterID = caller.CharacterID
	return h.Notes.Create(ctx, note)
}

func (h *HR) ListNotes(ctx context.Context, caller Identity, filter domain.NoteFilter) ([]domain.HrNote, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbiddenf("HR notes require site admin")
	}
	return h.Notes.List(ctx, filter)
}

func (h *HR) GetUserNotes(ctx context.Context, caller Identity, subjectUserID int64) ([]domain.HrNote, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbiddenf("HR notes require site admin")
	}
	return h.Notes.GetBySubjectUser(ctx, subjectUserID)
}

func (h *HR) UpdateNote(ctx context.Context, caller Identity, noteID int64, update domain.NoteUpdate) (*domain.HrNote, error) {
	if !caller.IsAdmin {
		return nil, domain.Forbiddenf("HR notes require site admin")
	}
	return h.Notes.Update(ctx, noteID, update)
}

func (h *HR) DeleteNote(ctx context.Context, caller Identity, noteID int64) error {
	if !caller.IsAdmin {
		return domain.Forbiddenf("HR notes require site admin")
	}
	return h.Notes.Delete(ctx, noteID)
}

func (h *HR) GrantRole(ctx context.Context, caller Identity, corporationID, userID, characterID int64, characterName string, role domain.HrRoleName, expiresAt *time.Time) (*domain.HrRole, error) {
	if err := h.requireRoleManager(ctx, caller, corporationID); err != nil {
		return nil, err
	}
	return h.Roles.Grant(ctx, corporationID, userID, characterID, characterName, role, caller.UserID, expiresAt)
}

func (h *HR) RevokeRole(ctx context.Context, caller Identity, roleID int64) error {
	role, err := h.Roles.GetRole(ctx, roleID)
	if err != nil {
		return err
	}
	if err := h.requireRoleManager(ctx, caller, role.CorporationID); err != nil {
		return err
	}
	return h.Roles.Revoke(ctx, roleID)
}

func (h *HR) GetRole(ctx context.Context, roleID int64) (*domain.HrRole, error) {
	return h.Roles.GetRole(ctx, roleID)
}

func (h *HR) GetUserRoles(ctx context.Context, userID int64, corporationID *int64) ([]domain.HrRole, error) {
	return h.Roles.GetUserRoles(ctx, userID, corporationID)
}

func (h *HR) GetCorporationRoles(ctx context.Context, corporationID int64, activeOnly bool) ([]domain.HrRole, error) {
	return h.Roles.GetCorporationRoles(ctx, corporationID, activeOnly)
}

func (h *HR) CheckPermission(ctx context.Context, userID, corporationID int64, required domain.HrRoleName) (bool, error) {
	return h.Roles.CheckPermission(ctx, userID, corporationID, required)
}

func (h *HR) GetUserHrCorporations(ctx context.Context, userID int64) ([]int64, error) {
	return h.Roles.GetUserHrCorporations(ctx, userID)
}

// requireRoleManager admits site admins and the corporation's CEO. The CEO
// is whichever of the caller's linked characters the oracle reports as
// leading the corporation.
func (h *HR) requireRoleManager(ctx context.Context, caller Identity, corporationID int64) error {
	if caller.IsAdmin {
		return nil
	}
	ceoID, err := h.oracle.GetCEO(ctx, corporationID)
	if err != nil {
		return fmt.Errorf("leadership lookup for corporation %d failed: %w", corporationID, err)
	}
	for _, characterID := range caller.CharacterIDs {
		if characterID == ceoID {
			return nil
		}
	}
	return domain.Forbiddenf("managing HR roles requires site admin or corporation CEO")
}
