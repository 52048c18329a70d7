package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/nineboard-agent/internal/entity"
	"github.com/rocketscienceinc/nineboard-agent/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameReader interface {
	Snapshot() (usecase.Snapshot, bool)
	GetGame(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteGame(ctx context.Context, id string) error
}

// Server - read-only debug view of the agent.
type Server struct {
	logger zerolog.Logger
	games  gameReader
}

func NewServer(logger zerolog.Logger, games gameReader) *Server {
	return &Server{
		logger: logger.With().Str("component", "rest").Logger(),
		games:  games,
	}
}

// Router - routes of the debug server.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlePing)
	router.Get("/state", that.handleState)
	router.Get("/games/{id}", that.handleGame)
	router.Delete("/games/{id}", that.handleDeleteGame)

	return router
}

// Start - serves HTTP on port until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error().Err(err).Msg("failed to shutdown server")
		}
	})
	defer stop()

	that.logger.Info().Str("port", port).Msg("debug server started")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
