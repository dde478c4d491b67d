package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, corporation_id, user_id, character_id, character_name, application_text,
	status, reviewed_by, reviewed_at, review_notes, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (*domain.Application, error) {
	app := &domain.Application{}
	var reviewedBy sql.NullInt64
	var reviewedAt sql.NullTime
	var reviewNotes sql.NullString
	err := row.Scan(&app.ID, &app.CorporationID, &app.UserID, &app.CharacterID, &app.CharacterName,
		&app.ApplicationText, &app.Status, &reviewedBy, &reviewedAt, &reviewNotes, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	app.ReviewedBy = int64Ptr(reviewedBy)
	app.ReviewedAt = timePtr(reviewedAt)
	app.ReviewNotes = stringPtr(reviewNotes)
	return app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO applications
	          (corporation_id, user_id, character_id, character_name, application_text, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		app.CorporationID, app.UserID, app.CharacterID, app.CharacterName, app.ApplicationText, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return mapConflict(err, "an open application for this corporation already exists")
	}

	entry.ApplicationID = app.ID
	if err := insertLogEntry(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("application %d not found", id)
	}
	return app, err
}

func (r *applicationRepository) FindOpenByUserAndCorporation(ctx context.Context, userID, corporationID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
	          WHERE user_id = $1 AND corporation_id = $2 AND status IN ('pending', 'under_review')`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, userID, corporationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return app, err
}

func (r *applicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	var args []any

	if filter.CorporationID != nil {
		args = append(args, *filter.CorporationID)
		query += fmt.Sprintf(" AND corporation_id = $%d", len(args))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Scope != nil {
		// Caller visibility is part of the predicate, not a post-filter, so
		// LIMIT/OFFSET count only rows the caller is allowed to see.
		args = append(args, filter.Scope.UserID, pq.Array(filter.Scope.HrCorporations))
		query += fmt.Sprintf(" AND (user_id = $%d OR corporation_id = ANY($%d))", len(args)-1, len(args))
	}

	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application, entry *domain.ActivityLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE applications
	          SET status = $1, reviewed_by = $2, reviewed_at = $3, review_notes = $4, updated_at = NOW()
	          WHERE id = $5
	          RETURNING updated_at`
	err = tx.QueryRowContext(ctx, query,
		app.Status, nullInt64(app.ReviewedBy), nullTime(app.ReviewedAt), nullString(app.ReviewNotes), app.ID,
	).Scan(&app.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("application %d not found", app.ID)
	}
	if err != nil {
		return err
	}

	if err := insertLogEntry(ctx, tx, entry); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundf("application %d not found", id)
	}
	return nil
}
