package chessmg

// Square indexes the padded 10x12 board. One border file sits on each side of the real
// files and two border ranks above and below the real ranks, so that any knight leap or
// ray step from a real square lands either on a real square or on a border slot, never
// wrapping onto the opposite edge.
//
//	110 .. 119   border
//	100 .. 109   border
//	 91  A8 .. H8  98
//	 ..
//	 21  A1 .. H1  28
//	 10 .. 19    border
//	  0 ..  9    border
type Square int

const (
	// BoardSquares is the number of slots in the padded board.
	BoardSquares = 120
	// OffBoardIndex is the compact index reported for border slots.
	OffBoardIndex = 64
)

// NoSquare is used where no square applies, e.g. no en-passant target.
const NoSquare Square = -1

const (
	A1 Square = iota + 21
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = iota + 31
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = iota + 41
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = iota + 51
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = iota + 61
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = iota + 71
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = iota + 81
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = iota + 91
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File and rank numbers run 0..7 (a..h, 1..8). FileNone/RankNone are reported for border slots.
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// Conversion tables, built once at package initialization and never written afterwards.
var (
	paddedToCompact [BoardSquares]int
	compactToPadded [64]Square
	fileOf          [BoardSquares]int
	rankOf          [BoardSquares]int
)

func init() {
	initSquareTables()
}

// initSquareTables walks ranks 1-8, files a-h (rank-major) and assigns compact indices 0..63.
func initSquareTables() {
	for sq := 0; sq < BoardSquares; sq++ {
		paddedToCompact[sq] = OffBoardIndex
		fileOf[sq] = FileNone
		rankOf[sq] = RankNone
	}
	idx := 0
	for rank := Rank1; rank <= Rank8; rank++ {
		for file := FileA; file <= FileH; file++ {
			sq := SquareOf(file, rank)
			paddedToCompact[sq] = idx
			compactToPadded[idx] = sq
			fileOf[sq] = file
			rankOf[sq] = rank
			idx++
		}
	}
}

// SquareOf returns the padded square for a file and rank in 0..7.
func SquareOf(file, rank int) Square { return Square(21 + file + rank*10) }

// FromCompact returns the padded square for a compact index in 0..63.
func FromCompact(idx int) Square { return compactToPadded[idx] }

// Compact returns the 0..63 index of sq, or OffBoardIndex for border slots.
func (sq Square) Compact() int { return paddedToCompact[sq] }

// OnBoard reports whether sq is one of the 64 real squares.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq < BoardSquares && paddedToCompact[sq] != OffBoardIndex
}

// File returns the file (0 = a) of sq, or FileNone for border slots.
func (sq Square) File() int { return fileOf[sq] }

// Rank returns the rank (0 = first rank) of sq, or RankNone for border slots.
func (sq Square) Rank() int { return rankOf[sq] }

// String returns algebraic coordinates such as "e4", "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	if !sq.OnBoard() {
		return "??"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic coordinates ("e4") to a padded square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, invalidMove(s, "square must be two characters")
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, invalidMove(s, "square out of range")
	}
	return SquareOf(int(file-'a'), int(rank-'1')), nil
}
