package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/nineboard-agent/internal/config"
	"github.com/rocketscienceinc/nineboard-agent/internal/repository"
	"github.com/rocketscienceinc/nineboard-agent/internal/repository/storage"
	"github.com/rocketscienceinc/nineboard-agent/internal/tictactoe"
	"github.com/rocketscienceinc/nineboard-agent/internal/usecase"
	"github.com/rocketscienceinc/nineboard-agent/transport/referee"
	"github.com/rocketscienceinc/nineboard-agent/transport/rest"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger zerolog.Logger, conf *config.Config) error {
	log := logger.With().Str("component", "app").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf.Redis)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error().Err(err).Msg("could not close redis storage")
		}
	}()

	searcher, err := newSearcher(logger, conf.Search)
	if err != nil {
		return err
	}

	gameManager := usecase.NewGameManager(logger, gameRepo, searcher)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		// the debug server lives as long as the referee session
		defer cancel()

		addr := conf.Referee.GetRefereeAddr()
		log.Info().Str("addr", addr).Msg("starting referee session")

		if sessionErr := referee.NewSession(logger, gameManager).Run(groupCtx, addr); sessionErr != nil {
			return fmt.Errorf("referee session error: %w", sessionErr)
		}

		return nil
	})

	if conf.HTTPPort != "" {
		group.Go(func() error {
			if httpErr := rest.NewServer(logger, gameManager).Start(groupCtx, conf.HTTPPort); httpErr != nil {
				return fmt.Errorf("HTTP server error: %w", httpErr)
			}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info().Msg("application stopped")

	return nil
}

// newGameRepository - redis archive when enabled, in-memory otherwise.
func newGameRepository(ctx context.Context, conf config.Redis) (repository.GameRepository, func() error, error) {
	if !conf.Enabled {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	if conf.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection), redisStorage.Close, nil
}

func newSearcher(logger zerolog.Logger, conf config.Search) (*tictactoe.Searcher, error) {
	heuristic, err := tictactoe.HeuristicByName(conf.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}

	options := []tictactoe.Option{
		tictactoe.WithMaxDepth(conf.MaxDepth),
		tictactoe.WithHeuristic(heuristic),
		tictactoe.WithTimeBudget(conf.TimeBudget),
		tictactoe.WithNodeBudget(conf.NodeBudget),
	}

	if conf.Trace {
		options = append(options, tictactoe.WithObserver(tictactoe.NewLogObserver(logger)))
	}

	return tictactoe.NewSearcher(options...), nil
}
