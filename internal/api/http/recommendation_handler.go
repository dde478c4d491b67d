package http

import (
	"encoding/json"
	"net/http"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/domain"
	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

type addRecommendationRequest struct {
	CharacterName      string `json:"character_name"`
	RecommendationText string `json:"recommendation_text"`
	Sentiment          string `json:"sentiment"`
}

func (s *Server) addRecommendation(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req addRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}

	rec, err := s.hr.AddRecommendation(r.Context(), caller, pathID(r, "id"), req.CharacterName, req.RecommendationText, domain.RecommendationSentiment(req.Sentiment))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

type updateRecommendationRequest struct {
	RecommendationText string `json:"recommendation_text"`
	Sentiment          string `json:"sentiment"`
}

func (s *Server) updateRecommendation(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	var req updateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, domain.Validationf("invalid request body"))
		return
	}

	err := s.hr.UpdateRecommendation(r.Context(), caller, pathID(r, "id"), req.RecommendationText, domain.RecommendationSentiment(req.Sentiment))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) deleteRecommendation(w http.ResponseWriter, r *http.Request, caller service.Identity) {
	if err := s.hr.DeleteRecommendation(r.Context(), caller, pathID(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
