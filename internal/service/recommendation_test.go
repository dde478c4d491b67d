package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

func TestRecommendationService_Add(t *testing.T) {
	ctx := context.Background()
	app := &domain.Application{ID: 5, CorporationID: corpID, UserID: userA, Status: domain.ApplicationStatusPending}

	t.Run("Success", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		appRepo := new(MockApplicationRepo)
		svc := service.NewRecommendationService(recRepo, appRepo)

		appRepo.On("GetByID", ctx, int64(5)).Return(app, nil).Once()
		recRepo.On("GetByApplicationAndUser", ctx, int64(5), userB).Return(nil, nil).Once()
		recRepo.On("Create", ctx, mock.MatchedBy(func(rec *domain.Recommendation) bool {
			return rec.ApplicationID == 5 && rec.UserID == userB && rec.Sentiment == domain.SentimentPositive
		}), mock.MatchedBy(func(entry *domain.ActivityLogEntry) bool {
			return entry.Action == domain.ActionRecommendationAdded && *entry.NewValue == "positive"
		})).Return(nil).Once()

		rec, err := svc.Add(ctx, 5, userB, charB, "Pilot B", "good fit", domain.SentimentPositive)
		assert.NoError(t, err)
		assert.Equal(t, "good fit", rec.RecommendationText)
		recRepo.AssertExpectations(t)
	})

	t.Run("OwnApplicationForbidden", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		appRepo := new(MockApplicationRepo)
		svc := service.NewRecommendationService(recRepo, appRepo)

		appRepo.On("GetByID", ctx, int64(5)).Return(app, nil).Once()

		_, err := svc.Add(ctx, 5, userA, charA, "Pilot A", "trust me", domain.SentimentPositive)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
		recRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ClosedApplicationRejected", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		appRepo := new(MockApplicationRepo)
		svc := service.NewRecommendationService(recRepo, appRepo)

		closed := &domain.Application{ID: 6, CorporationID: corpID, UserID: userA, Status: domain.ApplicationStatusRejected}
		appRepo.On("GetByID", ctx, int64(6)).Return(closed, nil).Once()

		_, err := svc.Add(ctx, 6, userB, charB, "Pilot B", "too late", domain.SentimentNeutral)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("DuplicateConflict", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		appRepo := new(MockApplicationRepo)
		svc := service.NewRecommendationService(recRepo, appRepo)

		appRepo.On("GetByID", ctx, int64(5)).Return(app, nil).Once()
		existing := &domain.Recommendation{ID: 9, ApplicationID: 5, UserID: userB}
		recRepo.On("GetByApplicationAndUser", ctx, int64(5), userB).Return(existing, nil).Once()

		_, err := svc.Add(ctx, 5, userB, charB, "Pilot B", "again", domain.SentimentPositive)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("InvalidSentiment", func(t *testing.T) {
		svc := service.NewRecommendationService(new(MockRecommendationRepo), new(MockApplicationRepo))
		_, err := svc.Add(ctx, 5, userB, charB, "Pilot B", "meh", domain.RecommendationSentiment("lukewarm"))
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestRecommendationService_Update(t *testing.T) {
	ctx := context.Background()
	rec := &domain.Recommendation{ID: 9, ApplicationID: 5, UserID: userB, Sentiment: domain.SentimentNeutral}

	t.Run("AuthorSuccess", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		svc := service.NewRecommendationService(recRepo, new(MockApplicationRepo))

		recRepo.On("GetByID", ctx, int64(9)).Return(rec, nil).Once()
		recRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Recommendation) bool {
			return r.Sentiment == domain.SentimentNegative && r.RecommendationText == "changed my mind"
		}), mock.MatchedBy(func(entry *domain.ActivityLogEntry) bool {
			return entry.Action == domain.ActionRecommendationUpdated &&
				*entry.PreviousValue == "neutral" &&
				*entry.NewValue == "negative" &&
				entry.Metadata["recommendation_id"] == "9"
		})).Return(nil).Once()

		err := svc.Update(ctx, 9, userB, charB, "changed my mind", domain.SentimentNegative, false)
		assert.NoError(t, err)
		recRepo.AssertExpectations(t)
	})

	t.Run("NonAuthorForbidden", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		svc := service.NewRecommendationService(recRepo, new(MockApplicationRepo))

		recRepo.On("GetByID", ctx, int64(9)).Return(rec, nil).Once()

		err := svc.Update(ctx, 9, userA, charA, "sabotage", domain.SentimentNegative, false)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestRecommendationService_Delete(t *testing.T) {
	ctx := context.Background()
	rec := &domain.Recommendation{ID: 9, ApplicationID: 5, UserID: userB, Sentiment: domain.SentimentPositive}

	t.Run("AdminSuccess", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		svc := service.NewRecommendationService(recRepo, new(MockApplicationRepo))

		recRepo.On("GetByID", ctx, int64(9)).Return(rec, nil).Once()
		recRepo.On("Delete", ctx, int64(9), mock.MatchedBy(func(entry *domain.ActivityLogEntry) bool {
			return entry.Action == domain.ActionRecommendationDeleted &&
				*entry.PreviousValue == "positive" &&
				entry.Metadata["recommendation_id"] == "9"
		})).Return(nil).Once()

		err := svc.Delete(ctx, 9, reviewerU, reviewerC, true)
		assert.NoError(t, err)
		recRepo.AssertExpectations(t)
	})

	t.Run("NonAuthorForbidden", func(t *testing.T) {
		recRepo := new(MockRecommendationRepo)
		svc := service.NewRecommendationService(recRepo, new(MockApplicationRepo))

		recRepo.On("GetByID", ctx, int64(9)).Return(rec, nil).Once()

		err := svc.Delete(ctx, 9, userA, charA, false)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
		recRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
