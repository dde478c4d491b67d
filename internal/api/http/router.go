// Package http exposes the HR facade over a thin JSON API. It carries no
// business rules: identity comes from gateway headers, errors from the
// service taxonomy.
package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

type Server struct {
	hr *service.HR
}

func NewServer(hr *service.HR) *Server {
	return &Server{hr: hr}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/applications", withIdentity(s.submitApplication)).Methods(http.MethodPost)
	api.HandleFunc("/applications", withIdentity(s.listApplications)).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id:[0-9]+}", withIdentity(s.getApplication)).Methods(http.MethodGet)
	api.HandleFunc("/applications/{id:[0-9]+}/status", withIdentity(s.updateApplicationStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/applications/{id:[0-9]+}/withdraw", withIdentity(s.withdrawApplication)).Methods(http.MethodPost)
	api.HandleFunc("/applications/{id:[0-9]+}", withIdentity(s.deleteApplication)).Methods(http.MethodDelete)

	api.HandleFunc("/applications/{id:[0-9]+}/recommendations", withIdentity(s.addRecommendation)).Methods(http.MethodPost)
	api.HandleFunc("/recommendations/{id:[0-9]+}", withIdentity(s.updateRecommendation)).Methods(http.MethodPatch)
	api.HandleFunc("/recommendations/{id:[0-9]+}", withIdentity(s.deleteRecommendation)).Methods(http.MethodDelete)

	api.HandleFunc("/hr/notes", withIdentity(s.createNote)).Methods(http.MethodPost)
	api.HandleFunc("/hr/notes", withIdentity(s.listNotes)).Methods(http.MethodGet)
	api.HandleFunc("/hr/notes/users/{userId:[0-9]+}", withIdentity(s.getUserNotes)).Methods(http.MethodGet)
	api.HandleFunc("/hr/notes/{id:[0-9]+}", withIdentity(s.updateNote)).Methods(http.MethodPatch)
	api.HandleFunc("/hr/notes/{id:[0-9]+}", withIdentity(s.deleteNote)).Methods(http.MethodDelete)

	api.HandleFunc("/hr/roles", withIdentity(s.grantRole)).Methods(http.MethodPost)
	api.HandleFunc("/hr/roles/{id:[0-9]+}", withIdentity(s.getRole)).Methods(http.MethodGet)
	api.HandleFunc("/hr/roles/{id:[0-9]+}", withIdentity(s.revokeRole)).Methods(http.MethodDelete)
	api.HandleFunc("/hr/roles/users/{userId:[0-9]+}", withIdentity(s.getUserRoles)).Methods(http.MethodGet)
	api.HandleFunc("/hr/roles/users/{userId:[0-9]+}/corporations", withIdentity(s.getUserHrCorporations)).Methods(http.MethodGet)
	api.HandleFunc("/hr/roles/corporations/{corporationId:[0-9]+}", withIdentity(s.getCorporationRoles)).Methods(http.MethodGet)
	api.HandleFunc("/hr/roles/check", withIdentity(s.checkPermission)).Methods(http.MethodGet)

	return r
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}
