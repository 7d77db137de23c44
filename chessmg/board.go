// Package chessmg holds one chess position in a sentinel-padded 120-square mailbox with
// shadow structures kept in lock-step with it (per-piece square lists, pawn bitboards,
// material and piece-class counters, king squares, hash key), and derives pseudo-legal
// moves, attacks and legal transitions from it.
//
// A Board is not safe for concurrent use. Parallel explorers should each work on a Clone.
package chessmg

import "fmt"

// maxPieceInstances bounds the squares listed per piece kind (two originals plus eight promotions).
const maxPieceInstances = 10

// undo is one history entry: the state a move overwrote, recorded as the move is made.
type undo struct {
	move           Move
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
	zobristKey     uint64
}

// Board represents the chess board state, including piece placement and game state.
type Board struct {
	// Padded mailbox: real squares hold NoPiece or a piece, border slots hold OffBoard
	squares [BoardSquares]Piece

	// Pawn bitboards over compact indices (index White, Black, Both)
	pawns [3]Bitboard

	// Squares occupied by each piece kind in ascending order; pieceCount gives the used
	// prefix and the rest stays zero, so equal placements give identical lists
	pieceList  [pieceKinds][maxPieceInstances]Square
	pieceCount [pieceKinds]int

	// Cached square of each side's king, NoSquare if absent
	kingSquare [2]Square

	// Running aggregates over squares, per side
	material    [2]int
	bigPieces   [2]int
	majorPieces [2]int
	minorPieces [2]int

	// Side to move (which player's turn it is); Both on a reset board
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Half-moves made since the position was loaded; always len(history)
	ply int

	// Zobrist hash key for the current position
	zobristKey uint64

	// One entry per ply made, popped on unmake
	history []undo
}

// reset puts every field into its empty configuration: real squares empty, border
// slots OffBoard, no side to move.
func (b *Board) reset() {
	for sq := range b.squares {
		b.squares[sq] = OffBoard
	}
	for idx := 0; idx < 64; idx++ {
		b.squares[compactToPadded[idx]] = NoPiece
	}
	b.pawns = [3]Bitboard{}
	b.pieceList = [pieceKinds][maxPieceInstances]Square{}
	b.pieceCount = [pieceKinds]int{}
	b.kingSquare = [2]Square{NoSquare, NoSquare}
	b.material = [2]int{}
	b.bigPieces = [2]int{}
	b.majorPieces = [2]int{}
	b.minorPieces = [2]int{}
	b.sideToMove = Both
	b.castlingRights = 0
	b.enPassantSquare = NoSquare
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	b.ply = 0
	b.zobristKey = 0
	if b.history == nil {
		b.history = make([]undo, 0, 256)
	}
	b.history = b.history[:0]
}

// track records p on sq in every shadow structure. The squares array and hash are the caller's.
func (b *Board) track(sq Square, p Piece) {
	c := p.Color()
	n := b.pieceCount[p]
	if n >= maxPieceInstances {
		panic(fmt.Sprintf("track: too many %v on the board", p))
	}
	list := &b.pieceList[p]
	i := n
	for i > 0 && list[i-1] > sq {
		list[i] = list[i-1]
		i--
	}
	list[i] = sq
	b.pieceCount[p] = n + 1

	b.material[c] += pieceValue[p]
	if pieceBig[p] {
		b.bigPieces[c]++
	}
	if pieceMajor[p] {
		b.majorPieces[c]++
	}
	if pieceMinor[p] {
		b.minorPieces[c]++
	}

	switch p.Type() {
	case PieceTypePawn:
		idx := sq.Compact()
		b.pawns[c].Set(idx)
		b.pawns[Both].Set(idx)
	case PieceTypeKing:
		b.kingSquare[c] = sq
	}
}

// untrack is the inverse of track.
func (b *Board) untrack(sq Square, p Piece) {
	c := p.Color()
	n := b.pieceCount[p]
	list := &b.pieceList[p]
	found := -1
	for i := 0; i < n; i++ {
		if list[i] == sq {
			found = i
			break
		}
	}
	if found < 0 {
		panic(fmt.Sprintf("untrack: %v on %v missing from its piece list", p, sq))
	}
	copy(list[found:n-1], list[found+1:n])
	list[n-1] = 0
	b.pieceCount[p] = n - 1

	b.material[c] -= pieceValue[p]
	if pieceBig[p] {
		b.bigPieces[c]--
	}
	if pieceMajor[p] {
		b.majorPieces[c]--
	}
	if pieceMinor[p] {
		b.minorPieces[c]--
	}

	switch p.Type() {
	case PieceTypePawn:
		idx := sq.Compact()
		b.pawns[c].Clear(idx)
		b.pawns[Both].Clear(idx)
	case PieceTypeKing:
		b.kingSquare[c] = NoSquare
	}
}

// placePiece puts p on the empty real square sq, updating every shadow structure and the hash.
// Together with removePiece it is the only way piece placement changes.
func (b *Board) placePiece(sq Square, p Piece) {
	if b.squares[sq] != NoPiece || !p.IsPiece() {
		panic(fmt.Sprintf("placePiece: cannot put %v on %v holding %v", p, sq, b.squares[sq]))
	}
	b.squares[sq] = p
	b.track(sq, p)
	b.hashPiece(p, sq)
}

// removePiece lifts the piece off sq and returns it, updating every shadow structure and the hash.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if !p.IsPiece() {
		panic(fmt.Sprintf("removePiece: no piece on %v", sq))
	}
	b.squares[sq] = NoPiece
	b.untrack(sq, p)
	b.hashPiece(p, sq)
	return p
}

// movePiece relocates the piece on from to the empty square to.
func (b *Board) movePiece(from, to Square) {
	b.placePiece(to, b.removePiece(from))
}

// indexPieces rebuilds the shadow structures from a squares array filled in raw form.
func (b *Board) indexPieces() {
	for idx := 0; idx < 64; idx++ {
		sq := compactToPadded[idx]
		if p := b.squares[sq]; p.IsPiece() {
			b.track(sq, p)
		}
	}
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps state in sync.
// NoPiece clears the square.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !sq.OnBoard() {
		panic(fmt.Sprintf("SetPiece: %d is not a real square", sq))
	}
	if b.squares[sq] != NoPiece {
		b.removePiece(sq)
	}
	if p != NoPiece {
		b.placePiece(sq, p)
	}
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.SetPiece(sq, NoPiece) }

// Clone returns an independent deep copy of the board, history included.
func (b *Board) Clone() *Board {
	c := *b
	c.history = make([]undo, len(b.history), cap(b.history))
	copy(c.history, b.history)
	return &c
}

// PieceAt returns what occupies sq: a piece, NoPiece, or OffBoard for border slots.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// PieceCount returns how many p stand on the board.
func (b *Board) PieceCount(p Piece) int { return b.pieceCount[p] }

// PieceSquares returns the squares holding p in ascending order.
func (b *Board) PieceSquares(p Piece) []Square {
	n := b.pieceCount[p]
	out := make([]Square, n)
	copy(out, b.pieceList[p][:n])
	return out
}

// Pawns returns the pawn bitboard for White, Black or Both.
func (b *Board) Pawns(c Color) Bitboard { return b.pawns[c] }

// KingSquare returns the cached king square for c.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// Material returns the summed piece values of c.
func (b *Board) Material(c Color) int { return b.material[c] }

// BigPieces counts c's non-pawn pieces, king included.
func (b *Board) BigPieces(c Color) int { return b.bigPieces[c] }

// MajorPieces counts c's rooks and queens.
func (b *Board) MajorPieces(c Color) int { return b.majorPieces[c] }

// MinorPieces counts c's knights and bishops.
func (b *Board) MinorPieces(c Color) int { return b.minorPieces[c] }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the castling rights still held.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for testing/consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Ply returns the number of half-moves made (and not unmade) since the position was loaded.
func (b *Board) Ply() int { return b.ply }

// Hash returns the current Zobrist hash key.
func (b *Board) Hash() uint64 { return b.zobristKey }

// String renders the mailbox, rank 8 first, followed by the FEN.
func (b *Board) String() string {
	out := make([]byte, 0, 8*17+96)
	for rank := Rank8; rank >= Rank1; rank-- {
		out = append(out, '1'+byte(rank), ' ')
		for file := FileA; file <= FileH; file++ {
			out = append(out, b.squares[SquareOf(file, rank)].String()[0], ' ')
		}
		out = append(out, '\n')
	}
	out = append(out, "  a b c d e f g h\n"...)
	return string(out) + b.ToFEN()
}
