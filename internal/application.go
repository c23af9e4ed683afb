package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - plays one console game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Debug("Starting console session", "log-level", conf.LogLevel)

	return Run(ctx, logger, os.Stdin, os.Stdout)
}

// Run - plays one game session over in and out until it finishes or ctx is canceled.
// The session goroutine is left blocked on its read when ctx wins.
func Run(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session", pkg.GenerateNewSessionID())

	controller, err := console.NewController(log, in, out)
	if err != nil {
		return fmt.Errorf("could not create console controller: %w", err)
	}

	game := tictactoe.NewGame()

	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Session started")
		sessionErrCh <- controller.PlayGame(game)
	}()

	select {
	case err = <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("console session failed: %w", err)
		}

		log.Info("Session ended", "over", game.IsGameOver(), "winner", game.Winner().String())

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
