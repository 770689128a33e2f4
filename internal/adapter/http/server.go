package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
)

const maxObservationBytes = 64 << 10

// Advisor computes an advisory report for one observation.
type Advisor interface {
	Advise(ctx context.Context, msg domain.ObservationMessage) (domain.AdvisoryReport, error)
}

// Server exposes the advisory API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	advisor    Advisor
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and the
// /v1 advisory routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, advisor Advisor, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		advisor: advisor,
		logger:  logger.With("component", "http"),
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/advisories", s.handleAdvise)
	mux.HandleFunc("GET /v1/catalog", handleCatalog)
	mux.HandleFunc("GET /v1/catalog/{band}", handleCatalogBand)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type errorResponse struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// handleAdvise runs the engine on a single observation. The optional "units"
// query parameter overrides the display units in the body.
func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxObservationBytes))
	if err := dec.Decode(&body); err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body", Reason: err.Error()})
		return
	}

	msg, err := domain.ParseObservationMessage(body)
	if err != nil {
		s.writeAdviseError(w, err)
		return
	}
	if u := r.URL.Query().Get("units"); u != "" {
		units := domain.UnitSystem(strings.ToLower(strings.TrimSpace(u)))
		if units != domain.Metric && units != domain.Imperial {
			sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid units", Reason: u})
			return
		}
		msg.DisplayUnits = units
	}

	report, err := s.advisor.Advise(r.Context(), msg)
	if err != nil {
		s.writeAdviseError(w, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, report)
}

func (s *Server) writeAdviseError(w http.ResponseWriter, err error) {
	var inv *domain.InvalidObservation
	if errors.As(err, &inv) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid observation",
			Field:  inv.Field,
			Reason: inv.Reason,
		})
		return
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body", Reason: err.Error()})
		return
	}
	s.logger.Error("advise failed", "error", err)
	sharedobs.WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

type catalogResponse struct {
	Bands    map[domain.Band]domain.Advisory           `json:"bands"`
	Guidance map[domain.Parameter]domain.GuidanceNotes `json:"guidance"`
}

func handleCatalog(w http.ResponseWriter, _ *http.Request) {
	guidance := make(map[domain.Parameter]domain.GuidanceNotes)
	for _, p := range domain.AllParameters() {
		guidance[p] = domain.Guidance(p)
	}
	sharedobs.WriteJSON(w, http.StatusOK, catalogResponse{Bands: domain.Catalog(), Guidance: guidance})
}

type bandResponse struct {
	Band      domain.Band         `json:"band"`
	Parameter domain.Parameter    `json:"parameter"`
	Tier      domain.SeverityTier `json:"tier"`
	Advisory  domain.Advisory     `json:"advisory"`
}

func handleCatalogBand(w http.ResponseWriter, r *http.Request) {
	b := domain.Band(r.PathValue("band"))
	if b.Parameter() == "" {
		sharedobs.WriteJSON(w, http.StatusNotFound, errorResponse{Error: "unknown band", Reason: string(b)})
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, bandResponse{
		Band:      b,
		Parameter: b.Parameter(),
		Tier:      b.Tier(),
		Advisory:  domain.Lookup(b),
	})
}
