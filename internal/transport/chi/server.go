// Package chi exposes the HTTP API: expert and project management plus
// ranked matching.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
	expertuc "github.com/kailas-cloud/expertmatch/internal/usecase/expert"
	healthuc "github.com/kailas-cloud/expertmatch/internal/usecase/health"
	matchuc "github.com/kailas-cloud/expertmatch/internal/usecase/match"
	projectuc "github.com/kailas-cloud/expertmatch/internal/usecase/project"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the usecases into HTTP handlers.
type Server struct {
	experts       *expertuc.Service
	projects      *projectuc.Service
	matcher       *matchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	experts *expertuc.Service,
	projects *projectuc.Service,
	matcher *matchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		experts:  experts,
		projects: projects,
		matcher:  matcher,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrExpertNotFound, http.StatusNotFound, codeExpertNotFound),
		sentinelHandler(domain.ErrProjectNotFound, http.StatusNotFound, codeProjectNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrIndexUnavailable, http.StatusServiceUnavailable, codeMatchServiceUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/experts", s.CreateExpert)
	r.Get("/experts/{id}", s.GetExpert)
	r.Delete("/experts/{id}", s.DeleteExpert)
	r.Post("/experts/{id}/publications", s.AddPublication)

	r.Post("/projects", s.CreateProject)
	r.Get("/projects/{id}", s.GetProject)
	r.Get("/projects/{id}/matches", s.MatchProject)

	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateExpert handles POST /experts.
func (s *Server) CreateExpert(w http.ResponseWriter, r *http.Request) {
	var req expertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	expert := expertFromRequest(req)
	created, err := s.experts.Create(r.Context(), &expert)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, expertToResponse(created))
}

// GetExpert handles GET /experts/{id}.
func (s *Server) GetExpert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	expert, err := s.experts.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expertToResponse(expert))
}

// DeleteExpert handles DELETE /experts/{id}.
func (s *Server) DeleteExpert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.experts.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddPublication handles POST /experts/{id}/publications.
func (s *Server) AddPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req publicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pub := domain.Publication{
		Title: req.Title,
		Year:  req.Year,
		URL:   req.URL,
	}
	created, err := s.experts.AddPublication(r.Context(), id, &pub)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, publicationResponse{
		ID:    created.ID,
		Title: created.Title,
		Year:  created.Year,
		URL:   created.URL,
	})
}

// CreateProject handles POST /projects.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	project := projectFromRequest(req)
	created, err := s.projects.Create(r.Context(), &project)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, projectToResponse(created))
}

// GetProject handles GET /projects/{id}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	project, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectToResponse(project))
}

// MatchProject handles GET /projects/{id}/matches. Experts come back in
// relevance order, best first.
func (s *Server) MatchProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	match, err := s.matcher.Match(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matchToResponse(match))
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathID parses the {id} path parameter. Writes a 400 and returns false
// on malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrExpertNotFound,
		domain.ErrProjectNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidArgument,
		domain.ErrIndexUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
