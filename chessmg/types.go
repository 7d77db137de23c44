package chessmg

// Piece identifies what occupies one slot of the padded board.
//
// Black pieces are encoded as (white piece type | 8) so that
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates Black
//
// NoPiece marks an empty real square and OffBoard marks a border slot.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8

	OffBoard Piece = 15
)

// pieceKinds sizes every table indexed by Piece.
const pieceKinds = 16

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece. Empty and border slots report PieceTypeNone.
func (p Piece) Type() PieceType {
	if !p.IsPiece() {
		return PieceTypeNone
	}
	return PieceType(p & 7)
}

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsPiece reports whether p is one of the twelve real pieces.
func (p Piece) IsPiece() bool {
	t := p & 7
	return p < pieceKinds && t >= 1 && t <= 6
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case OffBoard:
		return "x"
	}
	if c := charFromPiece(p); c != 0 {
		return string(c)
	}
	return "?"
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Color is a side. Both indexes the union entry of per-side tables and doubles as the
// "no side" value of a freshly reset board.
type Color uint8

const (
	White Color = 0
	Black Color = 1
	Both  Color = 2
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "both"
}

// CastlingRights is a 4-bit set of castling permissions.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll CastlingRights = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	var out []byte
	for _, r := range [4]struct {
		flag CastlingRights
		ch   byte
	}{{CastlingWhiteK, 'K'}, {CastlingWhiteQ, 'Q'}, {CastlingBlackK, 'k'}, {CastlingBlackQ, 'q'}} {
		if cr&r.flag != 0 {
			out = append(out, r.ch)
		}
	}
	return string(out)
}

// Piece classification tables. Kings count as big pieces but as neither major nor minor,
// and carry no material value.
var (
	pieceValue = [pieceKinds]int{
		WhitePawn: 100, WhiteKnight: 325, WhiteBishop: 325, WhiteRook: 550, WhiteQueen: 1000,
		BlackPawn: 100, BlackKnight: 325, BlackBishop: 325, BlackRook: 550, BlackQueen: 1000,
	}
	pieceBig = [pieceKinds]bool{
		WhiteKnight: true, WhiteBishop: true, WhiteRook: true, WhiteQueen: true, WhiteKing: true,
		BlackKnight: true, BlackBishop: true, BlackRook: true, BlackQueen: true, BlackKing: true,
	}
	pieceMajor = [pieceKinds]bool{
		WhiteRook: true, WhiteQueen: true,
		BlackRook: true, BlackQueen: true,
	}
	pieceMinor = [pieceKinds]bool{
		WhiteKnight: true, WhiteBishop: true,
		BlackKnight: true, BlackBishop: true,
	}
)

// PieceValue returns the material value of p in centipawns.
func PieceValue(p Piece) int { return pieceValue[p] }

// pieces lists the twelve real pieces in table order.
var pieces = [12]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}
