package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/console"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
	"github.com/rocketscienceinc/tictactoe-local/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/rest"
	"github.com/rocketscienceinc/tictactoe-local/transport/window"
)

// RunApp - runs the application until the window is closed.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	board := layout.New(conf.Window.Width, conf.Window.Height)
	gameController := tictactoe.NewGameController(pkg.GenerateGameID)
	gameManager := usecase.NewGameManager(logger, gameController, board, gameRepo, console.New(os.Stdout), usecase.Settings{
		RestartKey: conf.RestartKey,
		Slot:       conf.SnapshotSlot,
	})

	if err = gameManager.Resume(ctx); err != nil {
		return fmt.Errorf("could not resume saved round: %w", err)
	}

	// run status server
	if conf.Status.Enabled {
		go func() {
			log.Info("Starting status server", "port", conf.Status.HTTPPort)
			if httpErr := rest.Start(ctx, logger, conf.Status.HTTPPort, gameManager); httpErr != nil {
				log.Error("status server error", "error", httpErr)
			}
		}()
	}

	if err = window.New(logger, gameManager, board, conf.Window.Title).Run(ctx); err != nil {
		return fmt.Errorf("window error: %w", err)
	}

	log.Info("Application shutting down")

	return nil
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("redis disabled, keeping the round in memory")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewGameRepository(redisStorage), closeStorage, nil
}
