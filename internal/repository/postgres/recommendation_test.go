package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository/postgres"
)

func TestRecommendationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := postgres.NewRecommendationRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO recommendations").
		WithArgs(int64(5), int64(1002), int64(90000002), "Pilot B", "good fit", "positive").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(9), now, now))
	mock.ExpectQuery("INSERT INTO application_activity_log").
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(3), now))
	mock.ExpectCommit()

	rec := &domain.Recommendation{
		ApplicationID:      5,
		UserID:             1002,
		CharacterID:        90000002,
		CharacterName:      "Pilot B",
		RecommendationText: "good fit",
		Sentiment:          domain.SentimentPositive,
	}
	entry := &domain.ActivityLogEntry{ApplicationID: 5, UserID: 1002, Action: domain.ActionRecommendationAdded}
	assert.NoError(t, repo.Create(context.Background(), rec, entry))
	// The generated id lands in the audit metadata.
	assert.Equal(t, "9", entry.Metadata["recommendation_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationRepository_Delete(t *testing.T) {
	now := time.Now()

	t.Run("LogsBeforeDeleting", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := postgres.NewRecommendationRepository(db)

		// Expectations are ordered: the audit insert must precede the delete.
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO application_activity_log").
			WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(4), now))
		mock.ExpectExec("DELETE FROM recommendations WHERE id = \\$1").
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		entry := &domain.ActivityLogEntry{ApplicationID: 5, UserID: 1002, Action: domain.ActionRecommendationDeleted}
		assert.NoError(t, repo.Delete(context.Background(), 9, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailedAuditWriteAbortsDelete", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := postgres.NewRecommendationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO application_activity_log").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		entry := &domain.ActivityLogEntry{ApplicationID: 5, UserID: 1002, Action: domain.ActionRecommendationDeleted}
		assert.Error(t, repo.Delete(context.Background(), 9, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
