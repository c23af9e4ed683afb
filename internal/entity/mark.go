package entity

// Mark is a player's piece. The zero value is an empty cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

const BoardSize = 3

// Board is a 3x3 grid indexed as [row][col].
type Board [BoardSize][BoardSize]Mark

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (m Mark) IsEmpty() bool {
	return m == EmptyCell
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}
