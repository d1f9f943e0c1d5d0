package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/org-atlas/pkg/models/api"
	"github.com/de-tools/org-atlas/pkg/store/runs"
)

const testRoster = `id,manager,function,country,cost,base salary,bonus
ceo,,Executive,USA,500000,350000,150000
vp,ceo,Sales,USA,300000,180000,120000
ae,vp,Sales,India,60000,36000,24000
`

var fixedNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (*chi.Mux, *runs.Store) {
	t.Helper()
	store := runs.NewStore()
	handler := NewHandler(store, nil, func() time.Time { return fixedNow })

	router := chi.NewRouter()
	router.Post("/analyses", handler.CreateAnalysis)
	router.Get("/analyses/{id}", handler.GetAnalysis)
	router.Get("/analyses/{id}/findings", handler.GetFindings)
	router.Get("/analyses/{id}/layers", handler.GetLayers)
	router.Get("/analyses/{id}/export", handler.Export)
	return router, store
}

func createAnalysis(t *testing.T, router *chi.Mux) api.AnalysisSummary {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(testRoster))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var summary api.AnalysisSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	return summary
}

func TestCreateAnalysis(t *testing.T) {
	router, store := newRouter(t)

	summary := createAnalysis(t, router)
	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, 3, summary.Totals.Headcount)
	assert.Equal(t, 2, summary.Totals.Managers)
	assert.Equal(t, 1, store.Len())
}

func TestCreateAnalysis_BadRoster(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader("name\nAlice\n"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAnalysis_UnknownProfile(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/analyses?profile=enterprise", strings.NewReader(testRoster))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAnalysis(t *testing.T) {
	router, _ := newRouter(t)
	summary := createAnalysis(t, router)

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+summary.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var snapshot api.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, summary.ID, snapshot.ID)
	assert.Equal(t, fixedNow, snapshot.GeneratedAt)
	require.NotNil(t, snapshot.Tree)
	assert.Equal(t, "ceo", snapshot.Tree.ID)
	require.Len(t, snapshot.Layers, 3)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFindings(t *testing.T) {
	router, _ := newRouter(t)
	summary := createAnalysis(t, router)

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+summary.ID+"/findings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var findings []api.Finding
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &findings))
	assert.Equal(t, len(findings), summary.Findings)
}

func TestExport(t *testing.T) {
	router, _ := newRouter(t)
	summary := createAnalysis(t, router)

	req := httptest.NewRequest(http.MethodGet, "/analyses/"+summary.ID+"/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), summary.ID)

	var snapshot api.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, 3, snapshot.Totals.Headcount)
}
