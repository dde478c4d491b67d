package service

import (
	"context"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/repository"
)

type noteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) NoteService {
	return &noteService{noteRepo: noteRepo}
}

func (s *noteService) Create(ctx context.Context, note *domain.HrNote) (*domain.HrNote, error) {
	if note.NoteText == "" {
		return nil, domain.Validationf("note text must not be empty")
	}
	if note.NoteType == "" {
		note.NoteType = domain.NoteTypeGeneral
	}
	if note.Priority == "" {
		note.Priority = domain.PriorityNormal
	}
	if !note.NoteType.Valid() {
		return nil, domain.Validationf("unknown note type %q", note.NoteType)
	}
	if !note.Priority.Valid() {
		return nil, domain.Validationf("unknown priority %q", note.Priority)
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, filter domain.NoteFilter) ([]domain.HrNote, error) {
	if filter.NoteType != "" && !filter.NoteType.Valid() {
		return nil, domain.Validationf("unknown note type %q", filter.NoteType)
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, domain.Validationf("unknown priority %q", filter.Priority)
	}
	return s.noteRepo.List(ctx, filter)
}

func (s *noteService) GetBySubjectUser(ctx context.Context, subjectUserID int64) ([]domain.HrNote, error) {
	return s.noteRepo.ListBySubjectUser(ctx, subjectUserID)
}

// Update applies the whitelisted mutable fields. Author attribution and the
// subject are fixed at creation.
func (s *noteService) Update(ctx context.Context, noteID int64, update domain.NoteUpdate) (*domain.HrNote, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if update.NoteText != nil {
		if *update.NoteText == "" {
			return nil, domain.Validationf("note text must not be empty")
		}
		note.NoteText = *update.NoteText
	}
	if update.NoteType != nil {
		if !update.NoteType.Valid() {
			return nil, domain.Validationf("unknown note type %q", *update.NoteType)
		}
		note.NoteType = *update.NoteType
	}
	if update.Priority != nil {
		if !update.Priority.Valid() {
			return nil, domain.Validationf("unknown priority %q", *update.Priority)
		}
		note.Priority = *update.Priority
	}
	if update.Metadata != nil {
		note.Metadata = update.Metadata
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, noteID int64) error {
	return s.noteRepo.Delete(ctx, noteID)
}
