package suite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

var ErrSinkClosed = errors.New("sink is closed")

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Output *strings.Builder
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	// debug level keeps every log call evaluated, io.Discard keeps go test -v readable
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Output: &strings.Builder{},
	}
}

// Lines - splits the captured output into lines, ignoring the trailing newline.
func (that *Suite) Lines() []string {
	return strings.Split(strings.TrimRight(that.Output.String(), "\n"), "\n")
}

// FailingWriter accepts After writes and rejects every write after them.
type FailingWriter struct {
	After  int
	writes int
}

func (that *FailingWriter) Write(p []byte) (int, error) {
	if that.writes >= that.After {
		return 0, ErrSinkClosed
	}

	that.writes++

	return len(p), nil
}
