package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/athlete-weather-advisory/internal/adapter/http"
	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
	"github.com/couchcryptid/athlete-weather-advisory/internal/observability"
	"github.com/couchcryptid/athlete-weather-advisory/internal/pipeline"
)

const scenarioBody = `{"station":"riverside-track","observed_at":"2026-06-01T07:30:00Z","temperature":28,"humidity":65,"wind_speed":19,"uv_index":7,"precipitation":15,"air_quality":"Good","condition":"Partly cloudy"}`

var _ sharedobs.ReadinessChecker = (*pipeline.Pipeline)(nil)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingAdvisor struct{}

func (failingAdvisor) Advise(context.Context, domain.ObservationMessage) (domain.AdvisoryReport, error) {
	return domain.AdvisoryReport{}, errors.New("engine exploded")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAdvisor() *pipeline.Advisor {
	return pipeline.NewAdvisor(pipeline.AdvisorOptions{
		Source:       pipeline.SourceHTTP,
		DefaultUnits: domain.Metric,
		Alerts:       domain.DefaultAlertPreferences(),
		AlertMinTier: domain.TierHigh,
	}, observability.NewMetricsForTesting(), discardLogger())
}

func newTestServer(readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, newAdvisor(), discardLogger())
}

func do(t *testing.T, srv *httpadapter.Server, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, target, r))

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthzReturns200(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/readyz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec, body := do(t, newTestServer(fmt.Errorf("not ready yet")), http.MethodGet, "/readyz", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestReadyzUsesPipelineReadiness(t *testing.T) {
	p := pipeline.New(nil, nil, nil, discardLogger(), observability.NewMetricsForTesting(), 1)
	srv := httpadapter.NewServer(":0", p, newAdvisor(), discardLogger())

	rec, body := do(t, srv, http.MethodGet, "/readyz", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not ready", body["status"])
	assert.Contains(t, body["error"], "has not published")
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAdvise_ReturnsReport(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodPost, "/v1/advisories", scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "riverside-track", body["station"])

	report := body["report"].(map[string]any)
	assert.Equal(t, "metric", report["units"])

	composite := report["composite"].(map[string]any)
	assert.Equal(t, "Outdoor", composite["venue"])
	assert.Contains(t, composite["narrative"], "good air quality")

	classification := report["classification"].(map[string]any)
	assert.Equal(t, "temperature_warm", classification["temperature"])
	assert.Equal(t, "uv_high", classification["uv_index"])
	assert.Equal(t, "wind_light_moderate", classification["wind"])
}

func TestAdvise_UnitsQueryOverridesBody(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodPost, "/v1/advisories?units=imperial", scenarioBody)
	require.Equal(t, http.StatusOK, rec.Code)

	report := body["report"].(map[string]any)
	assert.Equal(t, "imperial", report["units"])

	params := report["parameters"].([]any)
	temp := params[0].(map[string]any)
	assert.Equal(t, "temperature", temp["parameter"])
	reading := temp["reading"].(map[string]any)
	assert.Equal(t, "82", reading["value"])
	assert.Equal(t, "°F", reading["unit"])
}

func TestAdvise_RejectsUnknownUnits(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodPost, "/v1/advisories?units=kelvin", scenarioBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid units", body["error"])
}

func TestAdvise_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
		wantField string
	}{
		{
			name:      "malformed json",
			body:      `{"temperature":`,
			wantCode:  http.StatusBadRequest,
			wantError: "malformed request body",
		},
		{
			name:      "wrong type",
			body:      `{"temperature":"hot","humidity":50,"wind_speed":5,"uv_index":1,"precipitation":0}`,
			wantCode:  http.StatusBadRequest,
			wantError: "malformed request body",
		},
		{
			name:      "missing reading",
			body:      `{"temperature":20,"wind_speed":5,"uv_index":1,"precipitation":0}`,
			wantCode:  http.StatusBadRequest,
			wantError: "invalid observation",
			wantField: domain.FieldHumidity,
		},
		{
			name:      "humidity out of range",
			body:      `{"temperature":20,"humidity":-5,"wind_speed":5,"uv_index":1,"precipitation":0}`,
			wantCode:  http.StatusBadRequest,
			wantError: "invalid observation",
			wantField: domain.FieldHumidity,
		},
		{
			name:      "unknown air quality label",
			body:      `{"temperature":20,"humidity":50,"wind_speed":5,"uv_index":1,"precipitation":0,"air_quality":"Smoky"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "invalid observation",
			wantField: domain.FieldAirQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, newTestServer(nil), http.MethodPost, "/v1/advisories", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantError, body["error"])
			if tt.wantField != "" {
				assert.Equal(t, tt.wantField, body["field"])
			}
		})
	}
}

func TestAdvise_EngineFailureIs500(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, failingAdvisor{}, discardLogger())
	rec, body := do(t, srv, http.MethodPost, "/v1/advisories", scenarioBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", body["error"])
}

func TestAdvise_RejectsOversizedBody(t *testing.T) {
	huge := `{"condition":"` + strings.Repeat("x", 70<<10) + `"}`
	rec, body := do(t, newTestServer(nil), http.MethodPost, "/v1/advisories", huge)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed request body", body["error"])
}

func TestCatalog_ListsEveryBand(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/v1/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)

	bands := body["bands"].(map[string]any)
	assert.Len(t, bands, len(domain.AllBands()))

	hot := bands["temperature_hot"].(map[string]any)
	assert.NotEmpty(t, hot["title"])

	guidance := body["guidance"].(map[string]any)
	assert.Len(t, guidance, len(domain.AllParameters()))
}

func TestCatalog_SingleBand(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/v1/catalog/uv_extreme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "uv_extreme", body["band"])
	assert.Equal(t, "uvIndex", body["parameter"])
	assert.Equal(t, "severe", body["tier"])
	advisory := body["advisory"].(map[string]any)
	assert.Equal(t, domain.Lookup(domain.UVExtreme).Title, advisory["title"])
}

func TestCatalog_UnknownBandIs404(t *testing.T) {
	rec, body := do(t, newTestServer(nil), http.MethodGet, "/v1/catalog/not_a_band", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown band", body["error"])
}
