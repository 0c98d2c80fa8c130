package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/position"
)

const twoKingsDiagram = `8 . . . . . . {K} .
7 . . . . . . . .
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 . . . . . . . .
1 . . . . K . . .
`

const backRankDiagram = `8 {R} . . . . . {K} .
7 . . . . . . . .
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 . . . . P . P P
1 . . . . . . . K
`

func newTestInterface(cfg Config) *Interface {
	i := NewInterface(cfg, zerolog.Nop())
	i.out = &bytes.Buffer{}
	return i
}

func TestParseHumanMove(t *testing.T) {
	t.Parallel()
	i := newTestInterface(DefaultConfig())

	for _, tc := range []struct {
		input    string
		from, to position.Pos
	}{
		{input: "e2 e4", from: position.E2, to: position.E4},
		{input: "e2-e4", from: position.E2, to: position.E4},
		{input: "e2e4", from: position.E2, to: position.E4},
		{input: "  g1 -> f3  ", from: position.G1, to: position.F3},
	} {
		mv, err := i.parseHumanMove(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.from, mv.From)
		require.Equal(t, tc.to, mv.To)
		require.Equal(t, board.SideWhite, mv.Piece.Side)
	}
}

func TestParseHumanMoveRejects(t *testing.T) {
	t.Parallel()
	i := newTestInterface(DefaultConfig())

	for _, input := range []string{
		"",
		"e2",
		"e2 e9",
		"i2 e4",
		"e2 e4 junk",
		"castle",
		"e5 e6", // empty origin
		"e7 e5", // opponent's pawn
	} {
		_, err := i.parseHumanMove(input)
		require.ErrorIs(t, err, ErrInvalidMove, "input %q", input)
	}
}

func TestRunScripted(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Colors = false
	i := newTestInterface(cfg)

	require.NoError(t, i.RunScripted())

	out := i.out.(*bytes.Buffer).String()
	require.Contains(t, out, "demo move: "+DemoMove)
	require.Regexp(t,
		regexp.MustCompile(`best line: 1\. \S+ \(-?\d+\.\d{2}\) 2\. \S+ \(-?\d+\.\d{2}\) 3\. \S+ \(-?\d+\.\d{2}\)`),
		out, "the annotation lists plies 1..3 at two decimals")

	require.True(t, i.board.At(position.A4).Type == board.PiecePawn, "the scripted move must be committed")
	require.True(t, i.board.At(position.A2).IsEmpty())
}

func TestPlayRoundBackRankMate(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Colors = false
	i := newTestInterface(cfg)

	b, err := board.NewBoard(board.WithDiagram(backRankDiagram))
	require.NoError(t, err)
	i.board = b

	// the pawn push opens nothing; the rook mates on the back rank
	done, err := i.playRound("e2 e4")
	require.NoError(t, err)
	require.True(t, done, "a mating round ends the game")

	out := i.out.(*bytes.Buffer).String()
	require.Contains(t, out, "Check!")
	require.Contains(t, out, "Checkmate!")

	rook := i.board.At(position.A1)
	require.Equal(t, board.PieceRook, rook.Type, "the mating move must be committed")
	require.Equal(t, board.SideBlack, rook.Side)
}

func TestLoadPosition(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "position.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoKingsDiagram), 0o644))

	i := newTestInterface(DefaultConfig())
	require.NoError(t, i.LoadPosition(path))
	require.Equal(t, board.PieceKing, i.board.At(position.E1).Type)
	require.Equal(t, board.SideBlack, i.board.At(position.G8).Side)
	require.True(t, i.board.At(position.D1).IsEmpty())
}

func TestLoadPositionInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "position.txt")
	require.NoError(t, os.WriteFile(path, []byte("8 garbage\n"), 0o644))

	i := newTestInterface(DefaultConfig())
	err := i.LoadPosition(path)
	require.ErrorIs(t, err, board.ErrInvalidDiagram)
	// board untouched, still the starting position
	require.Equal(t, board.PieceQueen, i.board.At(position.D1).Type)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 2\ndebug: true\ncolors: false\nsvg: out.svg\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Config{Depth: 2, Debug: true, Colors: false, SVGPath: "out.svg"}, cfg)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg, "unset keys keep their defaults")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
