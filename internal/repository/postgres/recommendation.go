package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type recommendationRepository struct {
	db *sql.DB
}

func NewRecommendationRepository(db *sql.DB) repository.RecommendationRepository {
	return &recommendationRepository{db: db}
}

const recommendationColumns = `id, application_id, user_id, character_id, character_name,
	recommendation_text, sentiment, created_at, updated_at`

func scanRecommendation(row interface{ Scan(...any) error }) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	err := row.Scan(&rec.ID, &rec.ApplicationID, &rec.UserID, &rec.CharacterID, &rec.CharacterName,
		&rec.RecommendationText, &rec.Sentiment, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO recommendations
	          (application_id, user_id, character_id, character_name, recommendation_text, sentiment, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		rec.ApplicationID, rec.UserID, rec.CharacterID, rec.CharacterName, rec.RecommendationText, rec.Sentiment,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return mapConflict(err, "a recommendation by this user already exists for the application")
	}

	// The generated id is only known after the insert.
	if entry.Metadata == nil {
		entry.Metadata = map[string]string{}
	}
	entry.Metadata["recommendation_id"] = strconv.FormatInt(rec.ID, 10)
	if err := insertLogEntry(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *recommendationRepository) GetByID(ctx context.Context, id int64) (*domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE id = $1`
	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("recommendation %d not found", id)
	}
	return rec, err
}

func (r *recommendationRepository) GetByApplicationAndUser(ctx context.Context, applicationID, userID int64) (*domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE application_id = $1 AND user_id = $2`
	rec, err := scanRecommendation(r.db.QueryRowContext(ctx, query, applicationID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *recommendationRepository) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Recommendation, error) {
	query := `SELECT ` + recommendationColumns + ` FROM recommendations WHERE application_id = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *recommendationRepository) Update(ctx context.Context, rec *domain.Recommendation, entry *domain.ActivityLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE recommendations
	          SET recommendation_text = $1, sentiment = $2, updated_at = NOW()
	          WHERE id = $3
	          RETURNING updated_at`
	err = tx.QueryRowContext(ctx, query, rec.RecommendationText, rec.Sentiment, rec.ID).Scan(&rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("recommendation %d not found", rec.ID)
	}
	if err != nil {
		return err
	}

	if err := insertLogEntry(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *recommendationRepository) Delete(ctx context.Context, id int64, entry *domain.ActivityLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Log first: if the audit write fails, the recommendation stays.
	if err := insertLogEntry(ctx, tx, entry); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundf("recommendation %d not found", id)
	}
	return tx.Commit()
}
