package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/kresna/patzer/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var backRank = [Width]PieceType{
	PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// Board is a flat 64-cell grid indexed y*8+x. It is a value type:
// assignment copies the whole position, which is what the search
// relies on when forking boards across recursion levels.
type Board struct {
	cells [TotalCells]Piece
	turn  Side
}

type boardConfig struct {
	diagram string
}

type BoardOption func(*boardConfig)

// WithDiagram initializes the board from a textual position diagram
// instead of the standard starting layout.
func WithDiagram(diagram string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.diagram = diagram
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.diagram != "" {
		cells, err := parseDiagram(cfg.diagram)
		if err != nil {
			return nil, err
		}
		return &Board{cells: cells, turn: SideWhite}, nil
	}

	b := &Board{turn: SideWhite}
	for x := position.Pos(0); x < Width; x++ {
		b.cells[position.New(x, position.Rank1)] = Piece{Type: backRank[x], Side: SideWhite}
		b.cells[position.New(x, position.Rank2)] = Piece{Type: PiecePawn, Side: SideWhite}
		b.cells[position.New(x, position.Rank7)] = Piece{Type: PiecePawn, Side: SideBlack}
		b.cells[position.New(x, position.Rank8)] = Piece{Type: backRank[x], Side: SideBlack}
	}
	return b, nil
}

func (b *Board) At(p position.Pos) Piece {
	return b.cells[p]
}

func (b *Board) Put(p position.Pos, pc Piece) {
	b.cells[p] = pc
}

// Lift empties the square and returns its prior content. The search
// lifts a piece off its origin before generating destinations and is
// responsible for putting it back.
func (b *Board) Lift(p position.Pos) Piece {
	pc := b.cells[p]
	b.cells[p] = Piece{}
	return pc
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) SetTurn(s Side) {
	b.turn = s
}

// Apply commits a move: the origin's piece lands on the destination,
// overwriting any capture, and the origin becomes empty. The Moved
// flag is deliberately left untouched here; only the speculative
// commit inside the search sets it. Turn is not toggled either, the
// search flips sides itself on its forked copies.
func (b *Board) Apply(mv Move) {
	b.cells[mv.To] = b.cells[mv.From]
	b.cells[mv.From] = Piece{}
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

// Draw renders the position for the terminal with colored
// checkerboard cells.
func (b *Board) Draw() string {
	dark := color.New(color.FgBlack, color.BgGreen)
	light := color.New(color.FgBlack, color.BgHiWhite)
	label := color.New(color.Bold)

	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(label.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pc := b.cells[position.New(x, y)]
			sym := pc.Type.SymbolUnicode(pc.Side)
			if pc.IsEmpty() {
				sym = " "
			}
			cell := dark
			if (x+y)%2 == 1 {
				cell = light
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Dump renders the position as a plain ASCII grid.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			pc := b.cells[position.New(x, y)]
			sym := pc.Type.Symbol()
			if pc.IsEmpty() {
				sym = " "
			} else if pc.Side == SideBlack {
				sym = strings.ToLower(sym)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}
