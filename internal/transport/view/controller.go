package view

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type engine interface {
	Move(row, col int) error
	Turn() entity.Mark
	IsGameOver() bool
	Winner() entity.Mark
}

// Controller applies moves coming from view events. Each event completes
// before the next one is handled, so views must call it from one goroutine.
type Controller struct {
	logger *slog.Logger
	view   View
	game   engine
}

func NewController(logger *slog.Logger, view View, game engine) (*Controller, error) {
	if logger == nil || view == nil || game == nil {
		return nil, fmt.Errorf("%w: logger, view and game are required", apperror.ErrNilArgument)
	}

	return &Controller{
		logger: logger.With("component", "view"),
		view:   view,
		game:   game,
	}, nil
}

// PlayGame - hands control to the view.
func (that *Controller) PlayGame() {
	that.view.AddFeature(that)
}

func (that *Controller) PlacePiece(row, col int) {
	log := that.logger.With("method", "PlacePiece", "row", row, "col", col)

	if that.game.IsGameOver() {
		log.Debug("move ignored, game is over")
		return
	}

	mark := that.game.Turn()
	if err := that.game.Move(row, col); err != nil {
		log.Debug("move rejected", "error", err)
		return
	}

	that.view.DisplayChess(row, col, mark)
	that.view.UpdateStatus(that.status())
}

func (that *Controller) status() string {
	if !that.game.IsGameOver() {
		return "Turn: " + that.game.Turn().String()
	}

	if winner := that.game.Winner(); !winner.IsEmpty() {
		return "Winner is " + winner.String()
	}

	return "It's a Tie game."
}
