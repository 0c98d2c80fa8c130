package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kresna/patzer/position"
)

var (
	// ErrInvalidDiagram represents a malformed position diagram.
	ErrInvalidDiagram = errors.New("invalid diagram")
)

// Diagram renders the position in the textual diagram format: one
// line per rank from 8 down to 1, the rank label followed by 8
// tokens. White pieces are bare letters, Black pieces are bracketed,
// and empty squares alternate checkerboard glyphs.
func (b *Board) Diagram() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(y.NotationComponentY())
		for x := position.Pos(0); x < Width; x++ {
			pc := b.cells[position.New(x, y)]
			_, _ = builder.WriteRune(' ')
			_, _ = builder.WriteString(squareToken(pc, x, y))
		}
		_, _ = builder.WriteString("\n")
	}
	return builder.String()
}

func squareToken(pc Piece, x, y position.Pos) string {
	if pc.IsEmpty() {
		if (x+y)%2 == 0 {
			return "."
		}
		return "·"
	}
	if pc.Side == SideBlack {
		return "{" + pc.Type.Symbol() + "}"
	}
	return pc.Type.Symbol()
}

func parseDiagram(diagram string) ([TotalCells]Piece, error) {
	var cells [TotalCells]Piece

	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != int(Height) {
		return cells, fmt.Errorf("%w: expected %d rank lines, got %d", ErrInvalidDiagram, Height, len(rows))
	}

	seen := [Height]bool{}
	for _, row := range rows {
		tokens := strings.Fields(row)
		if len(tokens) != int(Width)+1 {
			return cells, fmt.Errorf("%w: expected rank label and %d columns, got %d tokens", ErrInvalidDiagram, Width, len(tokens))
		}

		label := tokens[0]
		if len(label) != 1 || label[0] < '1' || label[0] > '8' {
			return cells, fmt.Errorf("%w: rank label %q out of range", ErrInvalidDiagram, label)
		}
		y := position.Pos(label[0] - '1')
		if seen[y] {
			return cells, fmt.Errorf("%w: duplicate rank %s", ErrInvalidDiagram, label)
		}
		seen[y] = true

		for x := position.Pos(0); x < Width; x++ {
			pc, err := parseSquareToken(tokens[x+1])
			if err != nil {
				return cells, err
			}
			cells[position.New(x, y)] = pc
		}
	}
	return cells, nil
}

func parseSquareToken(token string) (Piece, error) {
	switch token {
	case ".", "·", "-":
		return Piece{}, nil
	}

	side := SideWhite
	letter := token
	if strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
		side = SideBlack
		letter = token[1 : len(token)-1]
	}
	for _, t := range []PieceType{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing} {
		if letter == t.Symbol() {
			return Piece{Type: t, Side: side}, nil
		}
	}
	return Piece{}, fmt.Errorf("%w: unrecognized piece %q", ErrInvalidDiagram, token)
}
