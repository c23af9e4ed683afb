package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	cellSeparator = " | "
	rowSeparator  = "\n-----------\n"
)

var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", apperror.ErrInvalidMove)
)

// Game is a two-player 3x3 tic-tac-toe engine. X always moves first.
type Game struct {
	board entity.Board
	turn  entity.Mark
}

func NewGame() *Game {
	return &Game{
		turn: entity.PlayerX,
	}
}

// Move places the current turn's mark at (row, col), 0-based, and passes the turn.
func (that *Game) Move(row, col int) error {
	if err := checkIndex(row, col); err != nil {
		return err
	}

	if that.IsGameOver() {
		return apperror.ErrGameFinished
	}

	if !that.board[row][col].IsEmpty() {
		return fmt.Errorf("%w: %d, %d", ErrCellOccupied, row, col)
	}

	that.board[row][col] = that.turn
	// the turn passes even on the winning move, Winner relies on it
	that.turn = that.turn.Opponent()

	return nil
}

func (that *Game) Turn() entity.Mark {
	return that.turn
}

func (that *Game) IsGameOver() bool {
	return hasLineWin(that.board) || isBoardFull(that.board)
}

// Winner returns the mark that completed a line, or EmptyCell when nobody has.
func (that *Game) Winner() entity.Mark {
	if !hasLineWin(that.board) {
		return entity.EmptyCell
	}

	return that.turn.Opponent()
}

// Board returns a copy of the grid.
func (that *Game) Board() entity.Board {
	return that.board
}

func (that *Game) MarkAt(row, col int) (entity.Mark, error) {
	if err := checkIndex(row, col); err != nil {
		return entity.EmptyCell, err
	}

	return that.board[row][col], nil
}

func (that *Game) String() string {
	return RenderBoard(that.board)
}

// RenderBoard - draws the grid with " | " between cells and a dashed rule between rows.
func RenderBoard(board entity.Board) string {
	rows := make([]string, 0, entity.BoardSize)

	for _, row := range board {
		cells := make([]string, 0, entity.BoardSize)
		for _, mark := range row {
			if mark.IsEmpty() {
				cells = append(cells, " ")
				continue
			}
			cells = append(cells, mark.String())
		}
		rows = append(rows, " "+strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, rowSeparator)
}

// IsInvalidMove reports whether err rejects a move without ending the session.
func IsInvalidMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidMove) || errors.Is(err, apperror.ErrGameFinished)
}

func checkIndex(row, col int) error {
	if row < 0 || row >= entity.BoardSize || col < 0 || col >= entity.BoardSize {
		return fmt.Errorf("%w: %d, %d", ErrInvalidCell, row, col)
	}

	return nil
}

// lines - every row, every column and both diagonals.
func lines(board entity.Board) [][entity.BoardSize]entity.Mark {
	result := make([][entity.BoardSize]entity.Mark, 0, 2*entity.BoardSize+2)

	for _, row := range board {
		result = append(result, row)
	}

	for _, column := range transpose(board) {
		result = append(result, column)
	}

	var diagonal, antiDiagonal [entity.BoardSize]entity.Mark
	for i := 0; i < entity.BoardSize; i++ {
		diagonal[i] = board[i][i]
		antiDiagonal[i] = board[i][entity.BoardSize-1-i]
	}

	return append(result, diagonal, antiDiagonal)
}

func transpose(board entity.Board) entity.Board {
	var transposed entity.Board

	for i := range board {
		for j := range board[i] {
			transposed[j][i] = board[i][j]
		}
	}

	return transposed
}

func hasLineWin(board entity.Board) bool {
	for _, line := range lines(board) {
		if isLineOf(line, entity.PlayerX) || isLineOf(line, entity.PlayerO) {
			return true
		}
	}

	return false
}

func isLineOf(line [entity.BoardSize]entity.Mark, mark entity.Mark) bool {
	for _, cell := range line {
		if cell != mark {
			return false
		}
	}

	return true
}

func isBoardFull(board entity.Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}
