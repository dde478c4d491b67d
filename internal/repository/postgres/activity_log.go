package postgres

import (
	"context"
	"database/sql"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) repository.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx, so log entries can be
// written standalone or inside the transaction of the change they describe.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertLogEntry(ctx context.Context, q rowQuerier, entry *domain.ActivityLogEntry) error {
	meta, err := marshalMetadata(entry.Metadata)
	if err != nil {
		return err
	}
	query := `INSERT INTO application_activity_log
	          (application_id, user_id, character_id, action, previous_value, new_value, metadata, timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	          RETURNING id, timestamp`
	return q.QueryRowContext(ctx, query,
		entry.ApplicationID, entry.UserID, entry.CharacterID, entry.Action,
		nullString(entry.PreviousValue), nullString(entry.NewValue), meta,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *activityLogRepository) Create(ctx context.Context, entry *domain.ActivityLogEntry) error {
	return insertLogEntry(ctx, r.db, entry)
}

func (r *activityLogRepository) ListByApplication(ctx context.Context, applicationID int64) ([]domain.ActivityLogEntry, error) {
	query := `SELECT id, application_id, user_id, character_id, action, previous_value, new_value, metadata, timestamp
	          FROM application_activity_log WHERE application_id = $1 ORDER BY timestamp, id`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLogEntry
	for rows.Next() {
		var e domain.ActivityLogEntry
		var prev, next sql.NullString
		var meta []byte
		if err := rows.Scan(&e.ID, &e.ApplicationID, &e.UserID, &e.CharacterID, &e.Action, &prev, &next, &meta, &e.Timestamp); err != nil {
			return nil, err
		}
		e.PreviousValue = stringPtr(prev)
		e.NewValue = stringPtr(next)
		if e.Metadata, err = unmarshalMetadata(meta); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
