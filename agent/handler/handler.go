package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	orchestratorx "github.com/tanpawarit/global-support-collab/agent/agents/orchestrator"
	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
	directoryx "github.com/tanpawarit/global-support-collab/agent/directory"
	transportx "github.com/tanpawarit/global-support-collab/agent/transport"
	serverx "github.com/tanpawarit/global-support-collab/pkg/server"
)

// Collaborator starts collaboration runs.
type Collaborator interface {
	Run(ctx context.Context, q contractx.Query) *orchestratorx.Run
	Process(ctx context.Context, q contractx.Query) (contractx.CollaborationResult, contractx.Customer, error)
}

// Prober reports whether the service behind a stage answers.
type Prober interface {
	Probe(ctx context.Context, stage contractx.Stage) error
}

type Handler struct {
	directory contractx.CustomerDirectory
	collab    Collaborator
	registry  contractx.Registry
	prober    Prober

	now        func() time.Time
	newQueryID func() string
}

func New(
	directory contractx.CustomerDirectory,
	collab Collaborator,
	registry contractx.Registry,
	prober Prober,
) (*Handler, error) {
	if directory == nil {
		return nil, fmt.Errorf("%w: customer directory is required", contractx.ErrValidation)
	}
	if collab == nil {
		return nil, fmt.Errorf("%w: collaborator is required", contractx.ErrValidation)
	}
	if registry == nil {
		return nil, fmt.Errorf("%w: endpoint registry is required", contractx.ErrValidation)
	}
	if prober == nil {
		return nil, fmt.Errorf("%w: prober is required", contractx.ErrValidation)
	}
	return &Handler{
		directory:  directory,
		collab:     collab,
		registry:   registry,
		prober:     prober,
		now:        time.Now,
		newQueryID: func() string { return "q-" + uuid.NewString() },
	}, nil
}

// Mount registers the support API on r. Routes that drive a collaboration are
// kept out of the request timeout; each endpoint call inside a run is already
// bounded by the stage timeout, and an EU run makes two of them.
func (h *Handler) Mount(r chi.Router, requestTimeout time.Duration) {
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(serverx.TimeoutMiddleware(requestTimeout))

			r.Get("/health", h.Health)
			r.Get("/customers", h.ListCustomers)
			r.Get("/customers/{customerID}", h.GetCustomer)
			r.Get("/support/sample-queries", h.SampleQueries)
			r.Get("/agents/status", h.AgentsStatus)
		})
		r.Post("/support/query", h.SubmitQuery)
		r.Post("/support/query-stream", h.SubmitQueryStream)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"services": map[string]string{
			"us_agent": "active",
			"eu_agent": "active",
		},
	})
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	region := contractx.Region(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("region"))))

	customers, err := h.directory.List(r.Context(), region)
	if err != nil {
		h.internalError(w, r, err, "list customers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"count":     len(customers),
	})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.directory.Get(r.Context(), chi.URLParam(r, "customerID"))
	if err != nil {
		if errors.Is(err, contractx.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, contractx.ErrCustomerNotFound.Error())
			return
		}
		h.internalError(w, r, err, "get customer")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customer": customer})
}

func (h *Handler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	q, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}

	result, customer, err := h.collab.Process(r.Context(), q)
	switch {
	case err == nil:
	case errors.Is(err, contractx.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, contractx.ErrCustomerNotFound.Error())
		return
	case errors.Is(err, contractx.ErrCancelled):
		zerolog.Ctx(r.Context()).Info().Str("query_id", q.ID).Msg("query abandoned by caller")
		writeError(w, http.StatusServiceUnavailable, "Request cancelled")
		return
	default:
		h.internalError(w, r, err, "process query")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"collaboration": result,
		"query":         q,
		"customer":      customer,
	})
}

// SubmitQueryStream answers with one frame per step and a terminal frame.
// Validation failures are still plain JSON errors since no stream exists yet.
func (h *Handler) SubmitQueryStream(w http.ResponseWriter, r *http.Request) {
	q, ok := h.decodeQuery(w, r)
	if !ok {
		return
	}

	sw, err := transportx.NewWriter(w)
	if err != nil {
		h.internalError(w, r, err, "open stream")
		return
	}

	run := h.collab.Run(r.Context(), q)
	if err := transportx.Forward(r.Context(), sw, run); err != nil && !errors.Is(err, context.Canceled) {
		zerolog.Ctx(r.Context()).Warn().Err(err).Str("query_id", q.ID).Msg("stream ended early")
	}
}

type sampleQuery struct {
	directoryx.SampleQuery
	Customer  *contractx.Customer `json:"customer"`
	Timestamp string              `json:"timestamp"`
}

func (h *Handler) SampleQueries(w http.ResponseWriter, r *http.Request) {
	ts := h.now().UTC().Format(time.RFC3339)
	samples := directoryx.SampleQueries()

	out := make([]sampleQuery, 0, len(samples))
	for _, s := range samples {
		item := sampleQuery{SampleQuery: s, Timestamp: ts}
		customer, err := h.directory.Get(r.Context(), s.CustomerID)
		switch {
		case err == nil:
			item.Customer = &customer
		case errors.Is(err, contractx.ErrCustomerNotFound):
		default:
			h.internalError(w, r, err, "enrich sample queries")
			return
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"queries": out})
}

type agentStatus struct {
	Role     string           `json:"role"`
	Endpoint string           `json:"endpoint"`
	Status   string           `json:"status"`
	Region   contractx.Region `json:"region"`
}

var collaborationFlow = []string{
	"US Agent analyzes incoming query",
	"EU Agent handles GDPR-compliant data access (if EU customer)",
	"US Agent generates personalized response using all available context",
}

func (h *Handler) AgentsStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agents": map[string]agentStatus{
			"us_agent": h.statusOf(r.Context(), contractx.StageHome, h.registry.Home(),
				"US Customer Support Specialist", contractx.RegionUS),
			"eu_agent": h.statusOf(r.Context(), contractx.StageCompliance, h.registry.Compliance(),
				"EU Customer Data Specialist", contractx.RegionEU),
		},
		"collaboration_flow": collaborationFlow,
	})
}

func (h *Handler) statusOf(
	ctx context.Context,
	stage contractx.Stage,
	endpoint contractx.ReasoningEndpoint,
	role string,
	region contractx.Region,
) agentStatus {
	status := "active"
	if err := h.prober.Probe(ctx, stage); err != nil {
		status = "unreachable"
		zerolog.Ctx(ctx).Warn().Err(err).Str("stage", string(stage)).Msg("reasoning endpoint probe failed")
	}
	return agentStatus{
		Role:     role,
		Endpoint: endpoint.Address(),
		Status:   status,
		Region:   region,
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error, op string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("request failed")
	writeError(w, http.StatusInternalServerError, transportx.PublicMessage(err))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
