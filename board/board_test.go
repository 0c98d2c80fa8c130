package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kresna/patzer/position"
)

func TestNewBoardStartingLayout(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := b.At(position.A1); got.Type != PieceRook || got.Side != SideWhite {
		t.Errorf("unexpected square a1: got=%+v", got)
	}
	for p := position.A2; p <= position.H2; p++ {
		pc := b.At(p)
		if pc.Type != PiecePawn || pc.Side != SideWhite || pc.Moved {
			t.Errorf("unexpected square %s: got=%+v", p, pc)
		}
	}
	for p := position.A7; p <= position.H7; p++ {
		pc := b.At(p)
		if pc.Type != PiecePawn || pc.Side != SideBlack || pc.Moved {
			t.Errorf("unexpected square %s: got=%+v", p, pc)
		}
	}
	if got := b.At(position.H8); got.Type != PieceRook || got.Side != SideBlack {
		t.Errorf("unexpected square h8: got=%+v", got)
	}
	for p := position.A3; p <= position.H6; p++ {
		if !b.At(p).IsEmpty() {
			t.Errorf("expected empty square %s: got=%+v", p, b.At(p))
		}
	}
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%v want=%v", got, SideWhite)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := *b

	mv := Move{Piece: b.At(position.E2), From: position.E2, To: position.E4}
	b.Apply(mv)

	if !b.At(position.E2).IsEmpty() {
		t.Errorf("expected empty origin: got=%+v", b.At(position.E2))
	}
	pc := b.At(position.E4)
	if pc.Type != PiecePawn || pc.Side != SideWhite {
		t.Errorf("unexpected destination: got=%+v", pc)
	}
	if pc.Moved {
		t.Error("Apply must not set the Moved flag")
	}
	if b.Turn() != before.Turn() {
		t.Error("Apply must not toggle turn")
	}

	// no other square may change
	for p := position.Pos(0); p < TotalCells; p++ {
		if p == position.E2 || p == position.E4 {
			continue
		}
		if b.At(p) != before.At(p) {
			t.Errorf("unexpected change at %s: got=%+v want=%+v", p, b.At(p), before.At(p))
		}
	}
}

func TestApplyCapture(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// slide the white queen onto the black queen, implicit capture
	b.Apply(Move{From: position.D1, To: position.D8})

	pc := b.At(position.D8)
	if pc.Type != PieceQueen || pc.Side != SideWhite {
		t.Errorf("unexpected destination: got=%+v", pc)
	}
	if !b.At(position.D1).IsEmpty() {
		t.Errorf("expected empty origin: got=%+v", b.At(position.D1))
	}
}

func TestLiftRestore(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pc := b.Lift(position.B1)
	if pc.Type != PieceKnight {
		t.Fatalf("unexpected lifted piece: got=%+v", pc)
	}
	if !b.At(position.B1).IsEmpty() {
		t.Fatalf("expected empty square after lift: got=%+v", b.At(position.B1))
	}
	b.Put(position.B1, pc)
	if b.At(position.B1) != pc {
		t.Errorf("unexpected square after restore: got=%+v want=%+v", b.At(position.B1), pc)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bb := b.Clone()
	bb.Apply(Move{From: position.E2, To: position.E4})
	if b.At(position.E2).IsEmpty() {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf := bytes.Buffer{}
	b.WriteSVG(&buf)
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("expected svg document")
	}
	if got := strings.Count(out, "<rect"); got != int(TotalCells) {
		t.Errorf("unexpected cell count: got=%d want=%d", got, TotalCells)
	}
	if !strings.Contains(out, "♔") || !strings.Contains(out, "♚") {
		t.Error("expected both kings in the image")
	}
}
