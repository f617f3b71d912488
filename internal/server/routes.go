package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dartsleague/internal/config"
	"dartsleague/internal/db"
	"dartsleague/internal/events"
	"dartsleague/internal/games"
	"dartsleague/internal/logger"
	"dartsleague/internal/mongostore"
	"dartsleague/internal/roster"
	"dartsleague/internal/wshub"

	"go.uber.org/zap"
)

func Run() error {
	appCfg := config.Load()

	log, err := logger.New(appCfg.LogLevel, appCfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	players := roster.Default()
	if appCfg.RosterFile != "" {
		if players, err = roster.Load(appCfg.RosterFile); err != nil {
			return err
		}
	}
	log.Info("roster loaded", zap.Int("players", len(players)))

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := OpenStore(connectCtx, appCfg.DatabaseURL, log)
	cancel()
	if err != nil {
		return err
	}
	defer store.Close()

	bus := events.NewBus()
	hub := wshub.NewHub(log.Named("wshub"))
	go hub.Run(ctx, bus)

	srv := &Server{
		Games:          store,
		Roster:         players,
		Bus:            bus,
		Hub:            hub,
		Metrics:        NewMetrics(),
		Log:            log.Named("http"),
		AllowedOrigins: appCfg.AllowedOrigins,
	}

	httpSrv := &http.Server{
		Addr:              ":" + appCfg.Port,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	log.Info(fmt.Sprintf("Server running on http://localhost:%s", appCfg.Port))

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(appCfg.ShutdownTimeout)*time.Second)
	defer cancelShutdown()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// Routes returns the HTTP handler with CORS and request logging applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleSaveGame)
	mux.HandleFunc("GET /api/games", s.handleListGames)
	mux.HandleFunc("GET /api/player-stats", s.handlePlayerStats)
	mux.HandleFunc("GET /api/live", s.handleLive)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.Metrics.Handler())

	return s.cors(s.logRequests(mux))
}

// OpenStore picks a game store from the connection string scheme. An empty
// string gives an in-memory store.
func OpenStore(ctx context.Context, uri string, log *zap.Logger) (games.Store, error) {
	switch {
	case uri == "":
		log.Warn("no database configured, games are kept in memory")
		return games.NewMemoryStore(), nil
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		store, err := mongostore.Connect(ctx, uri, log.Named("mongo"))
		if err != nil {
			return nil, err
		}
		return store, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		database, err := db.Connect(ctx, uri, log.Named("db"))
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
		return database, nil
	default:
		return nil, fmt.Errorf("unsupported database url scheme in %q", redact(uri))
	}
}

// redact drops everything after the scheme so credentials stay out of logs.
func redact(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[:i+3] + "..."
	}
	return "..."
}
