package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

type grantRoleRequest struct {
	CorporationID int64      `json:"corporation_id"`
	UserID        int64      `json:"user_id"`
	CharacterID   int64      `json:"character_id"`
	CharacterName string     `json:"character_name"`
	Role          string     `json:"role"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (s *Server) grantRole(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req grantRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}
	if req.CorporationID == 0 || req.UserID == 0 || req.CharacterID == 0 {
		respondError(w, r, domain.Validationf("corporation_id, user_id and character_id are required"))
		return
	}

	role, err := s.hr.GrantRole(r.Context(), caller, req.CorporationID, req.UserID, req.CharacterID, req.CharacterName, domain.HrRoleName(req.Role), req.ExpiresAt)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, role)
}

func (s *Server) getRole(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	role, err := s.hr.GetRole(r.Context(), pathID(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, role)
}

func (s *Server) revokeRole(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	if err := s.hr.RevokeRole(r.Context(), caller, pathID(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) getUserRoles(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var corporationID *int64
	if v := r.URL.Query().Get("corporation_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			corporationID = &id
		}
	}
	roles, err := s.hr.GetUserRoles(r.Context(), pathID(r, "userId"), corporationID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

func (s *Server) getUserHrCorporations(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	corps, err := s.hr.GetUserHrCorporations(r.Context(), pathID(r, "userId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, corps)
}

func (s *Server) getCorporationRoles(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	activeOnly := true
	if v := r.URL.Query().Get("active_only"); v != "" {
		activeOnly = v != "false"
	}
	roles, err := s.hr.GetCorporationRoles(r.Context(), pathID(r, "corporationId"), activeOnly)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

func (s *Server) checkPermission(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	q := r.URL.Query()
	userID, err1 := strconv.ParseInt(q.Get("user_id"), 10, 64)
	corporationID, err2 := strconv.ParseInt(q.Get("corporation_id"), 10, 64)
	role := domain.HrRoleName(q.Get("role"))
	if err1 != nil || err2 != nil || role.Level() == 0 {
		respondError(w, r, domain.Validationf("user_id, corporation_id and a valid role are required"))
		return
	}

	allowed, err := s.hr.CheckPermission(r.Context(), userID, corporationID, role)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"allowed": allowed})
}
