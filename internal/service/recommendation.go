package service

import (
	"context"
	"strconv"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type recommendationService struct {
	recRepo repository.RecommendationRepository
	appRepo repository.ApplicationRepository
}

func NewRecommendationService(recRepo repository.RecommendationRepository, appRepo repository.ApplicationRepository) RecommendationService {
	return &recommendationService{recRepo: recRepo, appRepo: appRepo}
}

func (s *recommendationService) Add(ctx context.Context, applicationID, userID, characterID int64, characterName, text string, sentiment domain.RecommendationSentiment) (*domain.Recommendation, error) {
	if !sentiment.Valid() {
		return nil, domain.Validationf("unknown sentiment %q", sentiment)
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID == userID {
		return nil, domain.Forbiddenf("cannot recommend own application")
	}
	if !app.Status.IsOpen() {
		return nil, domain.Validationf("application %d is no longer open for recommendations", applicationID)
	}
	existing, err := s.recRepo.GetByApplicationAndUser(ctx, applicationID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("a recommendation for this application already exists")
	}

	rec := &domain.Recommendation{
		ApplicationID:      applicationID,
		UserID:             userID,
		CharacterID:        characterID,
		CharacterName:      characterName,
		RecommendationText: text,
		Sentiment:          sentiment,
	}
	entry := &domain.ActivityLogEntry{
		ApplicationID: applicationID,
		UserID:        userID,
		CharacterID:   characterID,
		Action:        domain.ActionRecommendationAdded,
		NewValue:      strPtr(string(sentiment)),
	}
	if err := s.recRepo.Create(ctx, rec, entry); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recommendationService) Update(ctx context.Context, recommendationID, callerUserID, callerCharacterID int64, text string, sentiment domain.RecommendationSentiment, isAdmin bool) error {
	rec, err := s.recRepo.GetByID(ctx, recommendationID)
	if err != nil {
		return err
	}
	if rec.UserID != callerUserID && !isAdmin {
		return domain.Forbiddenf("only the author or an admin may edit a recommendation")
	}
	if !sentiment.Valid() {
		return domain.Validationf("unknown sentiment %q", sentiment)
	}

	previous := rec.Sentiment
	rec.RecommendationText = text
	rec.Sentiment = sentiment
	entry := &domain.ActivityLogEntry{
		ApplicationID: rec.ApplicationID,
		UserID:        callerUserID,
		CharacterID:   callerCharacterID,
		Action:        domain.ActionRecommendationUpdated,
		PreviousValue: strPtr(string(previous)),
		NewValue:      strPtr(string(sentiment)),
		Metadata:      map[string]string{"recommendation_id": strconv.FormatInt(rec.ID, 10)},
	}
	return s.recRepo.Update(ctx, rec, entry)
}

func (s *recommendationService) Delete(ctx context.Context, recommendationID, callerUserID, callerCharacterID int64, isAdmin bool) error {
	rec, err := s.recRepo.GetByID(ctx, recommendationID)
	if err != nil {
		return err
	}
	if rec.UserID != callerUserID && !isAdmin {
		return domain.Forbiddenf("only the author or an admin may delete a recommendation")
	}

	entry := &domain.ActivityLogEntry{
		ApplicationID: rec.ApplicationID,
		UserID:        callerUserID,
		CharacterID:   callerCharacterID,
		Action:        domain.ActionRecommendationDeleted,
		PreviousValue: strPtr(string(rec.Sentiment)),
		Metadata:      map[string]string{"recommendation_id": strconv.FormatInt(rec.ID, 10)},
	}
	return s.recRepo.Delete(ctx, recommendationID, entry)
}
