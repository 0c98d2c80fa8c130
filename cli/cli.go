package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/engine"
	"github.com/kresna/patzer/position"
)

// ErrInvalidMove rejects human input that is not a playable move:
// pattern mismatch, an empty origin square, or the opponent's piece.
var ErrInvalidMove = errors.New("invalid move")

// DemoMove is the scripted human move played in demo mode.
const DemoMove = "a2 a4"

// Two squares separated by anything that is not a square token, so
// "e2 e4", "e2-e4", and "e2e4" all parse.
var movePattern = regexp.MustCompile(`^([a-h][1-8])[^a-h1-8]*([a-h][1-8])$`)

type Interface struct {
	board  *board.Board
	engine *engine.Engine
	config Config

	humanSide board.Side
	logger    zerolog.Logger
	in        io.Reader
	out       io.Writer
}

func NewInterface(cfg Config, logger zerolog.Logger) *Interface {
	i := &Interface{
		config:    cfg,
		humanSide: board.SideWhite,
		logger:    logger,
		in:        os.Stdin,
		out:       os.Stdout,
	}
	i.board, _ = board.NewBoard() // cannot fail without options
	i.engine = engine.NewEngine(&engine.EngineConfig{
		MaxPlies: cfg.Depth,
		Debug:    cfg.Debug,
		Logger:   i.println,
	})
	return i
}

// LoadPosition replaces the current board with one parsed from a
// diagram file. The board is left untouched when parsing fails.
func (i *Interface) LoadPosition(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read position: %w", err)
	}
	b, err := board.NewBoard(board.WithDiagram(string(raw)))
	if err != nil {
		return err
	}
	i.board = b
	return nil
}

// Run prompts for the human's move, answers with the engine's, and
// repeats until the game ends or the input stream does.
func (i *Interface) Run() error {
	i.drawBoard()

	reader := bufio.NewReader(i.in)
	for {
		fmt.Fprint(i.out, "> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		done, err := i.playRound(input)
		if err != nil {
			if errors.Is(err, ErrInvalidMove) {
				i.println(err)
				i.println("enter a move as two squares, e.g. e2 e4")
				continue
			}
			return err
		}
		if done {
			return nil
		}
	}
}

// RunScripted plays a single round with the scripted demo move.
func (i *Interface) RunScripted() error {
	i.drawBoard()
	i.println("demo move:", DemoMove)
	_, err := i.playRound(DemoMove)
	return err
}

func (i *Interface) playRound(input string) (bool, error) {
	mv, err := i.parseHumanMove(input)
	if err != nil {
		return false, err
	}

	i.board.Apply(mv)
	i.snapshot()
	i.drawBoard()

	best, line := i.engine.FindBestMove(i.board, i.config.Depth)
	i.logger.Debug().
		Str("move", best.String()).
		Float64("value", best.Value).
		Uint32("nodes", i.engine.Nodes()).
		Msg("search done")

	if best.IsNone() {
		i.println("No moves left. Game over.")
		return true, nil
	}

	i.board.Apply(best)
	i.snapshot()
	i.drawBoard()
	i.println(annotate(line))

	probe, _ := i.engine.FindBestMove(i.board, 1)
	if engine.IsCheck(probe) {
		i.println("Check!")
	}
	if engine.IsCheckmate(line) {
		i.println("Checkmate!")
		return true, nil
	}
	return false, nil
}

func (i *Interface) parseHumanMove(input string) (board.Move, error) {
	groups := movePattern.FindStringSubmatch(strings.TrimSpace(input))
	if groups == nil {
		return board.Move{}, fmt.Errorf("%w: want two squares like e2 e4", ErrInvalidMove)
	}

	// the pattern only admits valid notation
	from, _ := position.NewPosFromNotation(groups[1])
	to, _ := position.NewPosFromNotation(groups[2])

	pc := i.board.At(from)
	if pc.IsEmpty() {
		return board.Move{}, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, from.Notation())
	}
	if pc.Side != i.humanSide {
		return board.Move{}, fmt.Errorf("%w: %s is not your piece", ErrInvalidMove, from.Notation())
	}
	return board.Move{Piece: pc, From: from, To: to}, nil
}

// annotate formats the engine's best line, one entry per searched ply.
func annotate(line []board.Move) string {
	var builder strings.Builder
	builder.WriteString("best line:")
	for ply := 1; ply < len(line); ply++ {
		if line[ply].IsNone() {
			break
		}
		builder.WriteString(fmt.Sprintf(" %d. %s (%.2f)", ply, line[ply], line[ply].Value))
	}
	return builder.String()
}

func (i *Interface) drawBoard() {
	if i.config.Colors {
		i.println(i.board.Draw())
		return
	}
	i.println(i.board.Dump())
}

func (i *Interface) snapshot() {
	if i.config.SVGPath == "" {
		return
	}
	f, err := os.Create(i.config.SVGPath)
	if err != nil {
		i.logger.Warn().Err(err).Msg("svg snapshot failed")
		return
	}
	defer f.Close()
	i.board.WriteSVG(f)
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
