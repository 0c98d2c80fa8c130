package engine

import (
	"math"

	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/position"
)

var materialValue = [6 + 1]float64{
	board.PiecePawn:   1,
	board.PieceBishop: 3,
	board.PieceKnight: 3,
	board.PieceRook:   5,
	board.PieceQueen:  10,
	board.PieceKing:   1000,
}

// captureValue is the material gained by landing on the square
// holding pc; zero for an empty square.
func captureValue(pc board.Piece) float64 {
	return materialValue[pc.Type]
}

// centerBonus rewards central destination squares and penalizes edges
// and corners, regardless of whose move it is or whether it captures.
func centerBonus(p position.Pos) float64 {
	x, y := float64(p.X()), float64(p.Y())
	return 0.8 - 0.1*(math.Abs(3.5-x)+math.Abs(3.5-y))
}
