package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/position"
)

const (
	// DefaultMaxPlies is the default search depth budget.
	DefaultMaxPlies = 4

	// dampingFactor discounts the opponent's best reply at every
	// level, modeling a mild preference for near-term material gain.
	dampingFactor = 0.9

	// CheckThreshold flags check: a depth-1 probe scoring above it
	// means a king-valued capture is threatened on the next move.
	CheckThreshold float64 = 500
	// MateThreshold flags checkmate from the best-line entry two
	// plies ahead of the root. Both are material-swing heuristics,
	// not legality proofs.
	MateThreshold float64 = -500
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	MaxPlies int
	Debug    bool
	Logger   func(...any)
}

// Engine performs an exhaustive fixed-depth best-move search: no
// alpha-beta cutoffs, no transposition caching, no iterative
// deepening. It always terminates and never fails; with no generable
// move it returns the sentinel.
type Engine struct {
	maxPlies int
	debug    bool
	logger   func(...any)

	nodes       uint32
	elapsedTime time.Duration
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.MaxPlies <= 0 {
		cfg.MaxPlies = DefaultMaxPlies
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		maxPlies: cfg.MaxPlies,
		debug:    cfg.Debug,
		logger:   cfg.Logger,
	}
}

// FindBestMove searches depth plies ahead for the side opposite to
// b.Turn() and returns the best move along with the best line, one
// entry per recorded ply (index 0 unused, the leaf ply unrecorded).
// The input board is never mutated; the search descends on forked
// copies.
func (e *Engine) FindBestMove(b *board.Board, depth int) (board.Move, []board.Move) {
	depth = max(depth, 1)
	e.nodes = 0

	startTime := time.Now()
	best, line := e.search(b.Clone(), 1, depth)
	e.elapsedTime = time.Since(startTime)

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d best:%s (%.2f) nodes:%d (%.0fn/s) t:%s",
				depth, best, best.Value, e.nodes, float64(e.nodes)/((e.elapsedTime + 1).Seconds()), e.elapsedTime))
	}
	return best, line
}

// search evaluates one node: flip the side to move, scan all 64
// squares in index order, and score every candidate destination of
// every piece of the searching side. A candidate's value is its
// capture value minus the damped best reply (recursed on a forked
// board with the speculative move committed), plus the center bonus.
// Strict improvement wins; ties keep the first-scanned candidate.
func (e *Engine) search(b *board.Board, ply, maxPlies int) (board.Move, []board.Move) {
	e.nodes++
	side := b.Turn().Opposite()
	b.SetTurn(side)

	best := board.NoMove()
	line := make([]board.Move, maxPlies)
	for from := position.Pos(0); from < board.TotalCells; from++ {
		pc := b.At(from)
		if pc.IsEmpty() || pc.Side != side {
			continue
		}

		// lift the piece so ray generation sees an empty origin;
		// restored below on every path before the scan advances
		b.Lift(from)
		for _, to := range destinations(b, from, pc) {
			value := captureValue(b.At(to))

			var childLine []board.Move
			if ply < maxPlies {
				child := b.Clone()
				moved := pc
				moved.Moved = true
				child.Put(to, moved)
				reply, replyLine := e.search(child, ply+1, maxPlies)
				value -= dampingFactor * reply.Value
				childLine = replyLine
			}
			value += centerBonus(to)

			if value > best.Value {
				best = board.Move{Piece: pc, Value: value, From: from, To: to}
				if childLine != nil {
					line = childLine
					line[ply] = best
				}
			}
		}
		b.Put(from, pc)
	}
	return best, line
}

// IsCheck interprets a depth-1 probe result: the opponent threatens
// to capture a king-valued piece on their next move.
func IsCheck(probe board.Move) bool {
	return probe.Value > CheckThreshold
}

// IsCheckmate inspects the best line returned by a full-depth search.
func IsCheckmate(line []board.Move) bool {
	if len(line) <= 2 {
		return false
	}
	return !line[2].IsNone() && line[2].Value < MateThreshold
}

// Nodes reports the number of nodes visited by the latest search.
func (e *Engine) Nodes() uint32 {
	return e.nodes
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}
