package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/logger"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type applicationService struct {
	appRepo repository.ApplicationRepository
	recRepo repository.RecommendationRepository
	logRepo repository.ActivityLogRepository
	roles   RoleService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	recRepo repository.RecommendationRepository,
	logRepo repository.ActivityLogRepository,
	roles RoleService,
) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		recRepo: recRepo,
		logRepo: logRepo,
		roles:   roles,
	}
}

func strPtr(s string) *string {
	return &s
}

func (s *applicationService) Submit(ctx context.Context, userID, characterID int64, characterName string, corporationID int64, text string) (*domain.Application, error) {
	existing, err := s.appRepo.FindOpenByUserAndCorporation(ctx, userID, corporationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for open applications: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflictf("an application to corporation %d is already open", corporationID)
	}

	app := &domain.Application{
		CorporationID:   corporationID,
		UserID:          userID,
		CharacterID:     characterID,
		CharacterName:   characterName,
		ApplicationText: text,
		Status:          domain.ApplicationStatusPending,
	}
	entry := &domain.ActivityLogEntry{
		UserID:      userID,
		CharacterID: characterID,
		Action:      domain.ActionSubmitted,
		NewValue:    strPtr(string(domain.ApplicationStatusPending)),
	}
	if err := s.appRepo.Create(ctx, app, entry); err != nil {
		return nil, err
	}
	logger.Info("application submitted", "application_id", app.ID, "corporation_id", corporationID, "user_id", userID)
	return app, nil
}

func (s *applicationService) List(ctx context.Context, filter domain.ApplicationFilter, callerUserID int64, isAdmin bool) ([]domain.Application, error) {
	if !isAdmin {
		corps, err := s.roles.GetUserHrCorporations(ctx, callerUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve HR scope: %w", err)
		}
		filter.Scope = &domain.ApplicationScope{UserID: callerUserID, HrCorporations: corps}
	}
	return s.appRepo.List(ctx, filter)
}

func (s *applicationService) Get(ctx context.Context, applicationID, callerUserID int64, isAdmin bool) (*domain.ApplicationDetail, error) {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	hrVisible := isAdmin
	if !hrVisible {
		roles, err := s.roles.GetUserRoles(ctx, callerUserID, &app.CorporationID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve HR roles: %w", err)
		}
		hrVisible = len(roles) > 0
	}
	if !hrVisible && app.UserID != callerUserID {
		return nil, domain.Forbiddenf("application %d is outside your HR scope", applicationID)
	}

	recs, err := s.recRepo.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	detail := &domain.ApplicationDetail{Application: *app, Recommendations: recs}

	// The audit trail is internal: applicants do not see it.
	if hrVisible {
		entries, err := s.logRepo.ListByApplication(ctx, app.ID)
		if err != nil {
			return nil, err
		}
		detail.ActivityLog = entries
	}
	return detail, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus, callerUserID, callerCharacterID int64, reviewNotes string, isAdmin bool) error {
	// Status values are deliberately open-ended; only emptiness is rejected.
	if status == "" {
		return domain.Validationf("status must not be empty")
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if !isAdmin {
		ok, err := s.roles.CheckPermission(ctx, callerUserID, app.CorporationID, domain.HrRoleReviewer)
		if err != nil {
			return fmt.Errorf("failed to check reviewer permission: %w", err)
		}
		if !ok {
			return domain.Forbiddenf("reviewing applications requires the %s role", domain.HrRoleReviewer)
		}
	}

	previous := app.Status
	now := time.Now().UTC()
	app.Status = status
	app.ReviewedBy = &callerUserID
	app.ReviewedAt = &now
	if reviewNotes != "" {
		app.ReviewNotes = &reviewNotes
	}

	entry := &domain.ActivityLogEntry{
		ApplicationID: app.ID,
		UserID:        callerUserID,
		CharacterID:   callerCharacterID,
		Action:        domain.ActionStatusChanged,
		PreviousValue: strPtr(string(previous)),
		NewValue:      strPtr(string(status)),
	}
	if reviewNotes != "" {
		entry.Metadata = map[string]string{"review_notes": reviewNotes}
	}
	if err := s.appRepo.Update(ctx, app, entry); err != nil {
		return err
	}
	logger.Info("application status changed", "application_id", app.ID, "from", previous, "to", status, "reviewer", callerUserID)
	return nil
}

func (s *applicationService) Withdraw(ctx context.Context, applicationID, callerUserID, callerCharacterID int64) error {
	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.UserID != callerUserID {
		return domain.Forbiddenf("only the applicant may withdraw an application")
	}

	previous := app.Status
	app.Status = domain.ApplicationStatusWithdrawn
	entry := &domain.ActivityLogEntry{
		ApplicationID: app.ID,
		UserID:        callerUserID,
		CharacterID:   callerCharacterID,
		Action:        domain.ActionWithdrawn,
		PreviousValue: strPtr(string(previous)),
		NewValue:      strPtr(string(domain.ApplicationStatusWithdrawn)),
	}
	return s.appRepo.Update(ctx, app, entry)
}

func (s *applicationService) Delete(ctx context.Context, applicationID int64) error {
	if err := s.appRepo.Delete(ctx, applicationID); err != nil {
		return err
	}
	logger.Info("application deleted", "application_id", applicationID)
	return nil
}
