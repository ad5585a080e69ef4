package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameSource interface {
	Game() entity.Game
}

// NewRouter returns the read-only status routes.
func NewRouter(logger *slog.Logger, source gameSource) http.Handler {
	handlers := &statusHandlers{
		logger: logger.With("component", "status"),
		source: source,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ping", pingHandler)
	r.Get("/game", handlers.game)

	return r
}

// Start serves the status routes until ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string, source gameSource) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, source),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down status server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
