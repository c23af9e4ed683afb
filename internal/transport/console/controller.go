package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const coordinatesPerMove = 2

type engine interface {
	Move(row, col int) error
	Turn() entity.Mark
	IsGameOver() bool
	Winner() entity.Mark
	String() string
}

// Controller plays one game over a text stream. Moves are read as 1-based
// "row col" integer pairs; "q" quits.
type Controller struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

func NewController(logger *slog.Logger, in io.Reader, out io.Writer) (*Controller, error) {
	if logger == nil || in == nil || out == nil {
		return nil, fmt.Errorf("%w: logger, input and output are required", apperror.ErrNilArgument)
	}

	return &Controller{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
	}, nil
}

// PlayGame - runs the game until it is over, the player quits or the input runs out.
// Only a failed write to the output ends it with an error.
func (that *Controller) PlayGame(game engine) error {
	if game == nil {
		return fmt.Errorf("%w: game is required", apperror.ErrNilArgument)
	}

	log := that.logger.With("method", "PlayGame")
	tokens := newTokenizer(that.in)
	move := make([]int, 0, coordinatesPerMove)
	updated := true

	for !game.IsGameOver() {
		if updated {
			if err := that.appendOut("%s\nEnter a move for %s:\n", game, game.Turn()); err != nil {
				return err
			}
			updated = false
		}

		next := tokens.next()

		switch next.kind {
		case tokenEnd, tokenQuit:
			if err := tokens.err(); err != nil {
				log.Warn("input stream failed, quitting", "error", err)
			}

			log.Info("game quit", "pending", len(move))

			return that.appendOut("Game quit! Ending game state:\n%s\n", game)
		case tokenGarbage:
			log.Debug("unparseable token", "token", next.raw)

			if err := that.appendOut("Not a valid number: %s\n", next.raw); err != nil {
				return err
			}

			continue
		case tokenNumber:
			move = append(move, next.value)
		}

		if len(move) < coordinatesPerMove {
			continue
		}

		row, col := move[0], move[1]
		move = move[:0]

		if err := game.Move(row-1, col-1); err != nil {
			if !tictactoe.IsInvalidMove(err) {
				return fmt.Errorf("failed to make move: %w", err)
			}

			log.Debug("move rejected", "row", row, "col", col, "error", err)

			if err = that.appendOut("Not a valid move: %d, %d\n", row, col); err != nil {
				return err
			}

			continue
		}

		log.Debug("move accepted", "row", row, "col", col, "next", game.Turn().String())
		updated = true
	}

	result := "Tie game."
	if winner := game.Winner(); !winner.IsEmpty() {
		result = winner.String() + " wins."
	}

	log.Info("game over", "result", result)

	return that.appendOut("%s\nGame is over! %s", game, result)
}

func (that *Controller) appendOut(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("could not write to output", "error", err)

		return fmt.Errorf("%w: %w", apperror.ErrOutputFailure, err)
	}

	return nil
}
