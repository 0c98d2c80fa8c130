package engine

import (
	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/position"
)

type offset struct {
	dx, dy position.Pos
}

var (
	knightOffsets = [8]offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	lateralDirections = [4]offset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	diagonalDirections = [4]offset{
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
	royalDirections = [8]offset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
)

// destinations enumerates candidate destination squares for pc sitting
// on from, in a fixed order (the search's tie-break contract). The
// origin square must already be lifted. Every returned square is
// either empty or holds an opposing piece; friendly squares block
// rays and are never emitted. No check or pin legality is applied.
func destinations(b *board.Board, from position.Pos, pc board.Piece) []position.Pos {
	switch pc.Type {
	case board.PiecePawn:
		return pawnDestinations(b, from, pc)
	case board.PieceKnight:
		return hopDestinations(b, from, pc.Side, knightOffsets[:])
	case board.PieceBishop:
		return rayDestinations(b, from, pc.Side, diagonalDirections[:], board.Width)
	case board.PieceRook:
		return rayDestinations(b, from, pc.Side, lateralDirections[:], board.Width)
	case board.PieceQueen:
		return rayDestinations(b, from, pc.Side, royalDirections[:], board.Width)
	case board.PieceKing:
		return rayDestinations(b, from, pc.Side, royalDirections[:], 1)
	default:
		return nil
	}
}

func pawnDestinations(b *board.Board, from position.Pos, pc board.Piece) []position.Pos {
	var dsts []position.Pos
	forward := pc.Side.Forward()

	// single advance, then the double advance while the single one is open
	if to, ok := from.Shift(0, forward); ok && b.At(to).IsEmpty() {
		dsts = append(dsts, to)
		if !pc.Moved {
			if to2, ok := from.Shift(0, 2*forward); ok && b.At(to2).IsEmpty() {
				dsts = append(dsts, to2)
			}
		}
	}

	// diagonal squares are capture-only
	for _, dx := range []position.Pos{-1, 1} {
		to, ok := from.Shift(dx, forward)
		if !ok {
			continue
		}
		if target := b.At(to); !target.IsEmpty() && target.Side != pc.Side {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func hopDestinations(b *board.Board, from position.Pos, s board.Side, offsets []offset) []position.Pos {
	var dsts []position.Pos
	for _, o := range offsets {
		to, ok := from.Shift(o.dx, o.dy)
		if !ok {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Side != s {
			dsts = append(dsts, to)
		}
	}
	return dsts
}

func rayDestinations(b *board.Board, from position.Pos, s board.Side, directions []offset, maxSteps position.Pos) []position.Pos {
	var dsts []position.Pos
	for _, d := range directions {
		for step := position.Pos(1); step <= maxSteps; step++ {
			to, ok := from.Shift(d.dx*step, d.dy*step)
			if !ok {
				break
			}
			target := b.At(to)
			if target.IsEmpty() {
				dsts = append(dsts, to)
				continue
			}
			if target.Side != s {
				dsts = append(dsts, to)
			}
			break
		}
	}
	return dsts
}
