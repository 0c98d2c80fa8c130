package board

import (
	"fmt"

	"github.com/kresna/patzer/position"
)

// NoMoveValue is the score of the sentinel "no move", used as the
// initial running best at every search node.
const NoMoveValue float64 = -9999

type Move struct {
	Piece Piece
	Value float64

	From, To position.Pos
}

// NoMove returns the sentinel move carrying no piece.
func NoMove() Move {
	return Move{Value: NoMoveValue}
}

func (m Move) IsNone() bool {
	return m.Piece.Type == PieceNone
}

func (m Move) String() string {
	if m.IsNone() {
		return "(none)"
	}
	sym := m.Piece.Type.Symbol()
	if m.Piece.Type == PiecePawn {
		sym = ""
	}
	return fmt.Sprintf("%s%s%s", sym, m.From.Notation(), m.To.Notation())
}

func (m Move) Notation() string {
	return m.From.Notation() + m.To.Notation()
}
