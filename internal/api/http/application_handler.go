package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

type submitApplicationRequest struct {
	CorporationID   int64  `json:"corporation_id"`
	CharacterName   string `json:"character_name"`
	ApplicationText string `json:"application_text"`
}

func (s *Server) submitApplication(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req submitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}
	if req.CorporationID == 0 {
		respondError(w, r, domain.Validationf("corporation_id is required"))
		return
	}

	app, err := s.hr.SubmitApplication(r.Context(), caller, req.CorporationID, req.CharacterName, req.ApplicationText)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (s *Server) listApplications(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	filter := domain.ApplicationFilter{}
	q := r.URL.Query()
	if v := q.Get("corporation_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CorporationID = &id
		}
	}
	if v := q.Get("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.UserID = &id
		}
	}
	filter.Status = domain.ApplicationStatus(q.Get("status"))
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

	apps, err := s.hr.ListApplications(r.Context(), caller, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, apps)
}

func (s *Server) getApplication(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	detail, err := s.hr.GetApplication(r.Context(), caller, pathID(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"review_notes"`
}

func (s *Server) updateApplicationStatus(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}
	err := s.hr.UpdateApplicationStatus(r.Context(), caller, pathID(r, "id"), domain.ApplicationStatus(req.Status), req.ReviewNotes)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) withdrawApplication(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	if err := s.hr.WithdrawApplication(r.Context(), caller, pathID(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) deleteApplication(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	if err := s.hr.DeleteApplication(r.Context(), caller, pathID(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
