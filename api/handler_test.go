package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Barritosaurus/cpu-scheduler/config"
	"github.com/Barritosaurus/cpu-scheduler/internal/responses"
	"github.com/Barritosaurus/cpu-scheduler/internal/schedulers"
)

const goldenBody = `{"processes":[
	{"process_id":1,"arrival_time":0,"burst_time":5,"priority":1},
	{"process_id":2,"arrival_time":1,"burst_time":3,"priority":2},
	{"process_id":3,"arrival_time":2,"burst_time":1,"priority":3}]}`

func newTestApp() *fiber.App {
	cfg := &config.SchedulerConfig{
		RoundRobinTimeQuantum: 2,
		Policies:              []schedulers.Policy{schedulers.FCFS, schedulers.SRTF, schedulers.RR},
	}
	app := fiber.New()
	Register(app, NewSchedulerHandlerImpl(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestSchedule(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, body := do(t, app, http.MethodPost, "/api/v1/schedule/srtf", goldenBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, schedulers.SRTF, got.Policy)
	assert.Equal(t, int64(9), got.TotalTime)
	require.Len(t, got.Details, 3)
	assert.Equal(t, int64(9), got.Details[0].FinishTime)
	assert.Equal(t, int64(5), got.Details[1].FinishTime)
	assert.Equal(t, int64(3), got.Details[2].FinishTime)
	assert.Contains(t, string(body), `"policy":"srtf"`)
}

func TestScheduleRoundRobinQuantum(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, body := do(t, app, http.MethodPost, "/api/v1/schedule/6", goldenBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var got responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(2), got.Quantum)

	withQuantum := strings.Replace(goldenBody, `{"processes"`, `{"quantum":10,"processes"`, 1)
	resp, body = do(t, app, http.MethodPost, "/api/v1/schedule/rr", withQuantum)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(10), got.Quantum)
	assert.Len(t, got.Gantt, 3)
}

func TestScheduleErrors(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{name: "unknown policy", target: "/api/v1/schedule/lottery", body: goldenBody, wantStatus: http.StatusNotFound},
		{name: "malformed body", target: "/api/v1/schedule/fcfs", body: `{"processes":`, wantStatus: http.StatusBadRequest},
		{name: "empty process list", target: "/api/v1/schedule/fcfs", body: `{"processes":[]}`, wantStatus: http.StatusBadRequest},
		{
			name:       "zero burst",
			target:     "/api/v1/schedule/sjf",
			body:       `{"processes":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative quantum",
			target:     "/api/v1/schedule/rr",
			body:       strings.Replace(goldenBody, `{"processes"`, `{"quantum":-1,"processes"`, 1),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		resp, body := do(t, app, http.MethodPost, tt.target, tt.body)
		assert.Equal(t, tt.wantStatus, resp.StatusCode, tt.name)

		var e responses.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &e), tt.name)
		assert.NotEmpty(t, e.Error, tt.name)
	}
}

func TestAllAlgorithms(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, body := do(t, app, http.MethodPost, "/api/v1/schedule", goldenBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 3)
	assert.Equal(t, schedulers.FCFS, got[0].Policy)
	assert.Equal(t, schedulers.SRTF, got[1].Policy)
	assert.Equal(t, schedulers.RR, got[2].Policy)
}

func TestPolicies(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	resp, body := do(t, app, http.MethodGet, "/api/v1/policies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []policyInfo
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 6)
	assert.Equal(t, policyInfo{Name: "fcfs", Code: 1, Title: "First-come, first-serve"}, got[0])
	assert.Equal(t, "rr", got[5].Name)
}
