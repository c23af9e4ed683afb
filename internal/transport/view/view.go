package view

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Features are the actions a view can trigger.
type Features interface {
	// PlacePiece - requests a move at a 0-based cell.
	PlacePiece(row, col int)
}

// View is a board display driven by a Controller.
type View interface {
	AddFeature(features Features)
	DisplayChess(row, col int, turn entity.Mark)
	UpdateStatus(text string)
}
