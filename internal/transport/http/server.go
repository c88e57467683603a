package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/ports"
)

// Server exposes the latest snapshot over HTTP. Snapshots are cached for a
// TTL so a page reload does not trigger a full upstream fetch cycle.
type Server struct {
	builder      ports.SnapshotBuilder
	logger       *slog.Logger
	ttl          time.Duration
	cycleTimeout time.Duration
	now          func() time.Time

	mu        sync.Mutex
	cached    *domain.Snapshot
	fetchedAt time.Time
}

type ServerOptions struct {
	Builder      ports.SnapshotBuilder
	Logger       *slog.Logger
	CacheTTL     time.Duration
	CycleTimeout time.Duration
}

func NewServer(opts ServerOptions) *Server {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cycle := opts.CycleTimeout
	if cycle <= 0 {
		cycle = time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		builder:      opts.Builder,
		logger:       logger.With("component", "http"),
		ttl:          ttl,
		cycleTimeout: cycle,
		now:          time.Now,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/trends", s.handleTrends)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := s.snapshot(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("encode snapshot", "error", err)
	}
}

// snapshot returns the cached snapshot if it is still fresh, otherwise
// rebuilds it. The mutex is held across the rebuild so concurrent requests
// share one fetch cycle instead of each starting their own. The rebuild is
// detached from the requester's context: the result outlives the request
// in the shared cache, so one client disconnecting must not cancel source
// fetches and poison the cache with fallback data for the full TTL.
func (s *Server) snapshot(ctx context.Context) *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.cached
	}

	cycleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cycleTimeout)
	defer cancel()

	snap := s.builder.BuildSnapshot(cycleCtx)
	s.cached = snap
	s.fetchedAt = s.now()
	return snap
}

// Refresh rebuilds the snapshot unconditionally and replaces the cache.
// Used by the scheduler so clients always read a warm result.
func (s *Server) Refresh(ctx context.Context) *domain.Snapshot {
	cycleCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()

	snap := s.builder.BuildSnapshot(cycleCtx)

	s.mu.Lock()
	s.cached = snap
	s.fetchedAt = s.now()
	s.mu.Unlock()

	return snap
}
