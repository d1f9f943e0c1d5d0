package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/org-atlas/pkg/models/api"
	"github.com/de-tools/org-atlas/pkg/store/runs"
)

func TestWebAPI_Routes(t *testing.T) {
	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Dependencies: Dependencies{
			Runs: runs.NewStore(),
		},
	})

	roster := "id,manager,cost\nceo,,500000\neng,ceo,150000\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(roster))
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var summary api.AnalysisSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Totals.Headcount)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+summary.ID, nil)
	rec = httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	rec = httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
