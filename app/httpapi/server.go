// Package httpapi serves health, metrics and read-only leaderboards.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Boards is the part of the score ledger the API reads from.
type Boards interface {
	GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, kind leaderboardservice.Kind, limit int) (scoreservice.LeaderboardOperationResult, error)
}

// Server holds the HTTP handlers.
type Server struct {
	boards   Boards
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewRouter builds the chi router for the API.
func NewRouter(boards Boards, gatherer prometheus.Gatherer, logger *slog.Logger) chi.Router {
	s := &Server{boards: boards, gatherer: gatherer, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/healthz", s.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Route("/guilds/{guildID}/leaderboards", func(r chi.Router) {
		r.Get("/{kind}", s.HandleLeaderboard)
	})
	return r
}

// NewMetricsRouter serves only /metrics, for a listener separate from the API.
func NewMetricsRouter(gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// NewHTTPServer wraps handler with the listener timeouts used in production.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleLeaderboard serves /guilds/{guildID}/leaderboards/{kind}[.png|.xlsx].
// The optional limit query parameter caps the number of rows.
func (s *Server) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	guildID := sharedtypes.GuildID(chi.URLParam(r, "guildID"))
	rawKind, format := splitFormat(chi.URLParam(r, "kind"))

	kind, err := leaderboardservice.ParseKind(rawKind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	limit := leaderboardservice.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	result, err := s.boards.GetLeaderboard(r.Context(), guildID, kind, limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to load leaderboard",
			slog.String("guild_id", guildID.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
		return
	}
	if result.Failure != nil {
		http.Error(w, result.Failure.Reason, http.StatusBadRequest)
		return
	}
	if result.Success == nil {
		http.Error(w, "empty result", http.StatusInternalServerError)
		return
	}
	board := result.Success

	switch format {
	case "png":
		body, err := leaderboardservice.RenderBarChart(kind.Title(), board.Entries, leaderboardservice.DefaultPalette)
		s.writeBinary(w, r, "image/png", body, err)
	case "xlsx":
		body, err := leaderboardservice.ExportXLSX(kind.Title(), board.Entries)
		if err == nil {
			w.Header().Set("Content-Disposition",
				fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, guildID, kind))
		}
		s.writeBinary(w, r, xlsxContentType, body, err)
	case "":
		writeJSON(w, http.StatusOK, board)
	default:
		http.Error(w, "unsupported format", http.StatusNotFound)
	}
}

func (s *Server) writeBinary(w http.ResponseWriter, r *http.Request, contentType string, body []byte, err error) {
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to render leaderboard", slog.Any("error", err))
		http.Error(w, "failed to render leaderboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func splitFormat(segment string) (kind, format string) {
	kind, format, _ = strings.Cut(segment, ".")
	return kind, format
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Serve runs srv until ctx is canceled, then shuts it down.
func Serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP API listening", slog.String("address", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
