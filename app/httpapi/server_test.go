package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBoards struct {
	calls  []leaderboardservice.Kind
	limits []int
	err    error
}

func (f *fakeBoards) GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (scoreservice.LeaderboardOperationResult, error) {
	f.calls = append(f.calls, kind)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return scoreservice.LeaderboardOperationResult{}, f.err
	}
	entries := leaderboardservice.Rank([]leaderboardservice.Entry{
		{Player: "1", Points: 12},
		{Player: "2", Points: 7},
	}, limit)
	return results.SuccessResult[scoreservice.Leaderboard, scoreservice.Failure](scoreservice.Leaderboard{
		GuildID: guildID, Kind: kind, Entries: entries,
	}), nil
}

func newTestServer(boards Boards) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "trivia_test_total", Help: "test"}))
	return NewRouter(boards, reg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(&fakeBoards{})

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trivia_test_total")
}

func TestHandleLeaderboard(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantType    string
		wantLimit   int
		wantNoCalls bool
	}{
		{name: "json", path: "/guilds/g1/leaderboards/total", wantStatus: http.StatusOK, wantType: "application/json", wantLimit: leaderboardservice.DefaultLimit},
		{name: "png", path: "/guilds/g1/leaderboards/high.png", wantStatus: http.StatusOK, wantType: "image/png", wantLimit: leaderboardservice.DefaultLimit},
		{name: "xlsx", path: "/guilds/g1/leaderboards/streak.xlsx?limit=5", wantStatus: http.StatusOK, wantType: xlsxContentType, wantLimit: 5},
		{name: "unknown kind", path: "/guilds/g1/leaderboards/weekly", wantStatus: http.StatusNotFound, wantNoCalls: true},
		{name: "bad limit", path: "/guilds/g1/leaderboards/total?limit=-1", wantStatus: http.StatusBadRequest, wantNoCalls: true},
		{name: "unknown format", path: "/guilds/g1/leaderboards/total.csv", wantStatus: http.StatusNotFound, wantLimit: leaderboardservice.DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boards := &fakeBoards{}
			rec := get(t, newTestServer(boards), tt.path)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantNoCalls {
				assert.Empty(t, boards.calls)
				return
			}
			require.Len(t, boards.limits, 1)
			assert.Equal(t, tt.wantLimit, boards.limits[0])
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHandleLeaderboard_Bodies(t *testing.T) {
	h := newTestServer(&fakeBoards{})

	rec := get(t, h, "/guilds/g1/leaderboards/total")
	var board scoreservice.Leaderboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	assert.Equal(t, leaderboardservice.KindTotalScores, board.Kind)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 1, board.Entries[0].Rank)

	rec = get(t, h, "/guilds/g1/leaderboards/high.png")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = get(t, h, "/guilds/g1/leaderboards/total.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip container")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "g1-total.xlsx")
}

func TestHandleLeaderboard_StoreError(t *testing.T) {
	rec := get(t, newTestServer(&fakeBoards{err: errors.New("db down")}), "/guilds/g1/leaderboards/total")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "probe"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := httptest.NewServer(NewMetricsRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "probe_total 1")

	resp2, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
