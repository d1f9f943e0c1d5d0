package analysis

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/org-atlas/pkg/adapters"
	"github.com/de-tools/org-atlas/pkg/export"
	"github.com/de-tools/org-atlas/pkg/models/api"
	"github.com/de-tools/org-atlas/pkg/models/domain"
	analysissvc "github.com/de-tools/org-atlas/pkg/services/analysis"
	"github.com/de-tools/org-atlas/pkg/services/benchmark"
	"github.com/de-tools/org-atlas/pkg/services/roster"
	"github.com/de-tools/org-atlas/pkg/store/runs"
)

// Handler serves the analysis API: roster upload, snapshot reads and export.
type Handler struct {
	store    *runs.Store
	registry benchmark.Registry
	exporter *export.Exporter
	now      func() time.Time
}

// NewHandler wires the handler. registry may be nil when no policy profiles
// are configured; now may be nil and defaults to UTC wall clock.
func NewHandler(store *runs.Store, registry benchmark.Registry, now func() time.Time) *Handler {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Handler{
		store:    store,
		registry: registry,
		exporter: export.NewExporter(),
		now:      now,
	}
}

// CreateAnalysis handles POST /analyses: a CSV roster in the request body,
// optionally a named policy profile via ?profile=.
func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	result, err := roster.Read(r.Body, roster.ColumnMapping{})
	if err != nil {
		logger.Warn().Err(err).Msg("roster rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	policy := domain.DefaultPolicy()
	if profile := r.URL.Query().Get("profile"); profile != "" {
		if h.registry == nil {
			http.Error(w, "no policy profiles configured", http.StatusBadRequest)
			return
		}
		policy, err = h.registry.GetPolicy(ctx, profile)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	analyzer := analysissvc.NewAnalyzer(h.now())
	snapshot, err := analyzer.Analyze(result.Records, policy)
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	run := &runs.Run{
		ID:        uuid.NewString(),
		Snapshot:  snapshot,
		Warnings:  result.Warnings,
		CreatedAt: h.now(),
	}
	h.store.Add(run)

	summary := api.AnalysisSummary{
		ID:       run.ID,
		Totals:   adapters.MapTotalsDomainToApi(snapshot.Totals),
		Findings: len(snapshot.Findings),
	}
	for _, warn := range result.Warnings {
		summary.Warnings = append(summary.Warnings, adapters.MapWarningRosterToApi(warn))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.Error().Err(err).Str("run", run.ID).Msg("failed to encode summary")
	}
}

// GetAnalysis handles GET /analyses/{id}.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	snapshot := adapters.MapSnapshotDomainToApi(run.Snapshot)
	snapshot.ID = run.ID
	h.respond(w, r, snapshot)
}

// GetFindings handles GET /analyses/{id}/findings.
func (h *Handler) GetFindings(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	findings := make([]api.Finding, 0, len(run.Snapshot.Findings))
	for _, f := range run.Snapshot.Findings {
		findings = append(findings, adapters.MapFindingDomainToApi(f))
	}
	h.respond(w, r, findings)
}

// GetLayers handles GET /analyses/{id}/layers.
func (h *Handler) GetLayers(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	layers := make([]api.LayerStat, 0, len(run.Snapshot.Layers))
	for _, l := range run.Snapshot.Layers {
		layers = append(layers, adapters.MapLayerStatDomainToApi(l))
	}
	h.respond(w, r, layers)
}

// Export handles GET /analyses/{id}/export, a pretty JSON download of the
// snapshot subset.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	logger := zerolog.Ctx(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=analysis-"+run.ID+".json")
	if err := h.exporter.WriteJSON(w, run.Snapshot); err != nil {
		logger.Error().Err(err).Str("run", run.ID).Msg("failed to export snapshot")
	}
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*runs.Run, bool) {
	id := chi.URLParam(r, "id")
	run, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return nil, false
	}
	return run, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
