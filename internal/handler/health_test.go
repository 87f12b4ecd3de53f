package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPinger mocks repository.Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthChecker(nil).HandleHealthz().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "0s", resp.Uptime)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		noPinger   bool
		wantStatus int
		wantState  string
	}{
		{name: "storage reachable", wantStatus: http.StatusOK, wantState: "ok"},
		{name: "storage unreachable", pingErr: assert.AnError, wantStatus: http.StatusServiceUnavailable, wantState: "unavailable"},
		{name: "in-memory store", noPinger: true, wantStatus: http.StatusOK, wantState: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checker *HealthChecker
			store := &MockPinger{}
			if tt.noPinger {
				checker = NewHealthChecker(nil)
			} else {
				store.On("Ping", mock.Anything).Return(tt.pingErr).Once()
				checker = NewHealthChecker(store)
			}

			rec := httptest.NewRecorder()
			checker.HandleReadyz().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeHealth(t, rec)
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, tt.wantState, resp.Checks["storage"])
			assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			store.AssertExpectations(t)
		})
	}
}

func TestResolveBuild(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = "dev"
	info := ResolveBuild("1.2.3")
	assert.Equal(t, "1.2.3", info.Version, "configured version used without ldflags")
	assert.Contains(t, info.GoVersion, "go")

	Version = "2.0.0"
	assert.Equal(t, "2.0.0", ResolveBuild("1.2.3").Version, "ldflags win")

	Version = ""
	assert.Equal(t, "dev", ResolveBuild("").Version)
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion(VersionInfo{Version: "1.2.3", GoVersion: "go1.24.0"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","go_version":"go1.24.0"}`, rec.Body.String())
}
