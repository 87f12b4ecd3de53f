package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/catalog"
	"github.com/osse101/EmojiKombat_Go/internal/database/memory"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/handler"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
)

func newTestServer(t *testing.T, apiKey string) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.New()
	persister := progression.NewPersister(store, progression.PersisterConfig{RetryDelay: time.Millisecond})
	svc := progression.NewService(catalog.Default(), store, persister, event.NewMemoryBus(), progression.Config{})

	ts := httptest.NewServer(NewRouter(Options{APIKey: apiKey}, svc, store))
	t.Cleanup(func() {
		ts.Close()
		_ = svc.Shutdown(context.Background())
	})
	return ts, store
}

func call(t *testing.T, ts *httptest.Server, method, path string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func TestRouter_PlayerJourney(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp, body := call(t, ts, http.MethodPost, "/api/v1/players", nil, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created handler.PlayerResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.PlayerID)
	base := "/api/v1/players/" + created.PlayerID

	resp, body = call(t, ts, http.MethodPost, base+"/tap", handler.TapRequest{Count: 49}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, base+"/upgrades/"+domain.UpgradeTapPower, nil, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode, "49 coins cannot buy a 50 coin upgrade")
	var rejected handler.RejectionResponse
	require.NoError(t, json.Unmarshal(body, &rejected))
	assert.Equal(t, int64(49), rejected.View.Balance, "rejection leaves state untouched")

	resp, _ = call(t, ts, http.MethodPost, base+"/tap", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, base+"/upgrades/"+domain.UpgradeTapPower, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bought handler.PlayerResponse
	require.NoError(t, json.Unmarshal(body, &bought))
	assert.Equal(t, int64(0), bought.View.Balance)
	assert.Equal(t, int64(2), bought.View.PerTapYield)

	resp, _ = call(t, ts, http.MethodPost, base+"/tasks/referral_1/claim", nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodPost, base+"/referrals", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, base+"/tasks/referral_1/claim", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var claimed handler.PlayerResponse
	require.NoError(t, json.Unmarshal(body, &claimed))
	assert.Contains(t, claimed.View.CompletedTasks, "referral_1")

	resp, _ = call(t, ts, http.MethodPost, base+"/tasks/referral_1/claim", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodPost, base+"/upgrades/ghost", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = call(t, ts, http.MethodDelete, base, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reset handler.PlayerResponse
	require.NoError(t, json.Unmarshal(body, &reset))
	assert.Zero(t, reset.View.TotalEarned)
	assert.Equal(t, int64(1), reset.View.PerTapYield)
}

func TestRouter_InvalidPlayerID(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp, _ := call(t, ts, http.MethodGet, "/api/v1/players/not%20valid", nil, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_APIKey(t *testing.T) {
	ts, _ := newTestServer(t, "k")

	resp, _ := call(t, ts, http.MethodGet, "/api/v1/catalog/upgrades", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodGet, "/api/v1/catalog/upgrades", nil, map[string]string{HeaderAPIKey: "k"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodGet, "/readyz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	ts, _ := newTestServer(t, "")

	call(t, ts, http.MethodPost, "/api/v1/players/metrics-player/tap", nil, nil)
	resp, body := call(t, ts, http.MethodGet, "/metrics", nil, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "emojikombat_taps_total")
	assert.Contains(t, string(body), `path="/api/v1/players/{playerID}/tap"`)
}
