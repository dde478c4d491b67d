package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

const noteColumns = `id, subject_user_id, subject_character_id, author_id, author_character_id,
	author_character_name, note_text, note_type, priority, metadata, created_at, updated_at`

func scanNote(row interface{ Scan(...any) error }) (*domain.HrNote, error) {
	note := &domain.HrNote{}
	var subjectChar sql.NullInt64
	var meta []byte
	err := row.Scan(&note.ID, &note.SubjectUserID, &subjectChar, &note.AuthorID, &note.AuthorCharacterID,
		&note.AuthorCharacterName, &note.NoteText, &note.NoteType, &note.Priority, &meta, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err
	}
	note.SubjectCharacterID = int64Ptr(subjectChar)
	if note.Metadata, err = unmarshalMetadata(meta); err != nil {
		return nil, err
	}
	return note, nil
}

func (r *noteRepository) Create(ctx context.Context, note *domain.HrNote) error {
	meta, err := marshalMetadata(note.Metadata)
	if err != nil {
		return err
	}
	query := `INSERT INTO hr_notes
	          (subject_user_id, subject_character_id, author_id, author_character_id, author_character_name,
	           note_text, note_type, priority, metadata, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		note.SubjectUserID, nullInt64(note.SubjectCharacterID), note.AuthorID, note.AuthorCharacterID,
		note.AuthorCharacterName, note.NoteText, note.NoteType, note.Priority, meta,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.HrNote, error) {
	query := `SELECT ` + noteColumns + ` FROM hr_notes WHERE id = $1`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("note %d not found", id)
	}
	return note, err
}

func (r *noteRepository) List(ctx context.Context, filter domain.NoteFilter) ([]domain.HrNote, error) {
	query := `SELECT ` + noteColumns + ` FROM hr_notes WHERE 1=1`
	var args []any

	if filter.SubjectUserID != nil {
		args = append(args, *filter.SubjectUserID)
		query += fmt.Sprintf(" AND subject_user_id = $%d", len(args))
	}
	if filter.NoteType != "" {
		args = append(args, filter.NoteType)
		query += fmt.Sprintf(" AND note_type = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
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

	var notes []domain.HrNote
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

func (r *noteRepository) ListBySubjectUser(ctx context.Context, subjectUserID int64) ([]domain.HrNote, error) {
	return r.List(ctx, domain.NoteFilter{SubjectUserID: &subjectUserID})
}

func (r *noteRepository) Update(ctx context.Context, note *domain.HrNote) error {
	meta, err := marshalMetadata(note.Metadata)
	if err != nil {
		return err
	}
	query := `UPDATE hr_notes
	          SET note_text = $1, note_type = $2, priority = $3, metadata = $4, updated_at = NOW()
	          WHERE id = $5
	          RETURNING updated_at`
	err = r.db.QueryRowContext(ctx, query, note.NoteText, note.NoteType, note.Priority, meta, note.ID).Scan(&note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("note %d not found", note.ID)
	}
	return err
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hr_notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundf("note %d not found", id)
	}
	return nil
}
