package board

type PieceType uint8

const (
	// PieceNone marks an empty square. Squares always hold a concrete
	// Piece value; emptiness is this sentinel type, never absence.
	PieceNone PieceType = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

func (t PieceType) String() string {
	return t.Name()
}

func (t PieceType) Name() string {
	switch t {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (t PieceType) Symbol() string {
	switch t {
	case PiecePawn:
		return "P"
	case PieceBishop:
		return "B"
	case PieceKnight:
		return "N"
	case PieceRook:
		return "R"
	case PieceQueen:
		return "Q"
	case PieceKing:
		return "K"
	default:
		return ""
	}
}

func (t PieceType) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch t {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch t {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is the content of one square. Moved gates the pawn double
// advance; it is stored uniformly for every type.
type Piece struct {
	Type  PieceType
	Side  Side
	Moved bool
}

func (p Piece) IsEmpty() bool {
	return p.Type == PieceNone
}
