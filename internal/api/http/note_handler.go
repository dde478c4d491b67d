package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

type createNoteRequest struct {
	SubjectUserID       int64             `json:"subject_user_id"`
	SubjectCharacterID  *int64            `json:"subject_character_id"`
	AuthorCharacterName string            `json:"author_character_name"`
	NoteText            string            `json:"note_text"`
	NoteType            string            `json:"note_type"`
	Priority            string            `json:"priority"`
	Metadata            map[string]string `json:"metadata"`
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}
	if req.SubjectUserID == 0 {
		respondError(w, r, domain.Validationf("subject_user_id is required"))
		return
	}

	note := &domain.HrNote{
		SubjectUserID:       req.SubjectUserID,
		SubjectCharacterID:  req.SubjectCharacterID,
		AuthorCharacterName: req.AuthorCharacterName,
		NoteText:            req.NoteText,
		NoteType:            domain.NoteType(req.NoteType),
		Priority:            domain.NotePriority(req.Priority),
		Metadata:            req.Metadata,
	}
	created, err := s.hr.CreateNote(r.Context(), caller, note)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	filter := domain.NoteFilter{}
	q := r.URL.Query()
	if v := q.Get("subject_user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.SubjectUserID = &id
		}
	}
	filter.NoteType = domain.NoteType(q.Get("note_type"))
	filter.Priority = domain.NotePriority(q.Get("priority"))
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			filter.Limit = int32(n)
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			filter.Offset = int32(n)
		}
	}

	notes, err := s.hr.ListNotes(r.Context(), caller, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (s *Server) getUserNotes(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	notes, err := s.hr.GetUserNotes(r.Context(), caller, pathID(r, "userId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

type updateNoteRequest struct {
	NoteText *string           `json:"note_text"`
	NoteType *string           `json:"note_type"`
	Priority *string           `json:"priority"`
	Metadata map[string]string `json:"metadata"`
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}

	update := domain.NoteUpdate{NoteText: req.NoteText, Metadata: req.Metadata}
	if req.NoteType != nil {
		noteType := domain.NoteType(*req.NoteType)
		update.NoteType = &noteType
	}
	if req.Priority != nil {
		priority := domain.NotePriority(*req.Priority)
		update.Priority = &priority
	}

	note, err := s.hr.UpdateNote(r.Context(), caller, pathID(r, "id"), update)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	if err := s.hr.DeleteNote(r.Context(), caller, pathID(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
