package chessmg

// Verify recomputes every cached structure from the squares array and compares it with the
// board's state. It returns nil when consistent, otherwise an error wrapping ErrInconsistent
// that names the first violated invariant. Intended for tests and debugging, not hot paths.
func (b *Board) Verify() error {
	var (
		count    [pieceKinds]int
		list     [pieceKinds][maxPieceInstances]Square
		pawns    [3]Bitboard
		material [2]int
		big      [2]int
		major    [2]int
		minor    [2]int
		kings    [2]Square
	)
	kings[White], kings[Black] = NoSquare, NoSquare

	for sq := Square(0); sq < BoardSquares; sq++ {
		p := b.squares[sq]
		if !sq.OnBoard() {
			if p != OffBoard {
				return inconsistent("border slot %d holds %v", int(sq), p)
			}
			continue
		}
		if p == NoPiece {
			continue
		}
		if !p.IsPiece() {
			return inconsistent("square %v holds invalid piece code %d", sq, uint8(p))
		}
		c := p.Color()
		if count[p] == maxPieceInstances {
			return inconsistent("more than %d %v on the board", maxPieceInstances, p)
		}
		list[p][count[p]] = sq
		count[p]++
		material[c] += pieceValue[p]
		if pieceBig[p] {
			big[c]++
		}
		if pieceMajor[p] {
			major[c]++
		}
		if pieceMinor[p] {
			minor[c]++
		}
		switch p.Type() {
		case PieceTypePawn:
			pawns[c].Set(sq.Compact())
			pawns[Both].Set(sq.Compact())
		case PieceTypeKing:
			if kings[c] != NoSquare {
				return inconsistent("%v has kings on %v and %v", c, kings[c], sq)
			}
			kings[c] = sq
		}
	}

	// Squares are scanned in ascending order, so the recomputed lists are already sorted.
	for _, p := range pieces {
		if b.pieceCount[p] != count[p] {
			return inconsistent("piece count for %v is %d, board holds %d", p, b.pieceCount[p], count[p])
		}
		if b.pieceList[p] != list[p] {
			return inconsistent("piece list for %v is %v, board holds %v", p, b.pieceList[p][:b.pieceCount[p]], list[p][:count[p]])
		}
	}

	for _, c := range [3]Color{White, Black, Both} {
		if b.pawns[c] != pawns[c] {
			return inconsistent("pawn bitboard for %v does not match squares", c)
		}
	}
	if b.pawns[White].Count() != b.pieceCount[WhitePawn] || b.pawns[Black].Count() != b.pieceCount[BlackPawn] {
		return inconsistent("pawn bitboard population differs from pawn count")
	}
	if b.pawns[Both].Count() != b.pieceCount[WhitePawn]+b.pieceCount[BlackPawn] {
		return inconsistent("union pawn bitboard population differs from pawn counts")
	}

	for _, c := range [2]Color{White, Black} {
		if b.material[c] != material[c] {
			return inconsistent("%v material is %d, squares give %d", c, b.material[c], material[c])
		}
		if b.bigPieces[c] != big[c] || b.majorPieces[c] != major[c] || b.minorPieces[c] != minor[c] {
			return inconsistent("%v piece-class counts (%d/%d/%d) differ from squares (%d/%d/%d)",
				c, b.bigPieces[c], b.majorPieces[c], b.minorPieces[c], big[c], major[c], minor[c])
		}
		if b.kingSquare[c] != kings[c] {
			return inconsistent("%v king cached on %v, squares have it on %v", c, b.kingSquare[c], kings[c])
		}
	}

	if b.sideToMove != White && b.sideToMove != Black {
		return inconsistent("side to move is %v", b.sideToMove)
	}
	if b.castlingRights&^CastlingAll != 0 {
		return inconsistent("castling rights %#x out of range", uint8(b.castlingRights))
	}
	if ep := b.enPassantSquare; ep != NoSquare {
		if !ep.OnBoard() {
			return inconsistent("en-passant square %d is not a real square", int(ep))
		}
		want := Rank6
		if b.sideToMove == Black {
			want = Rank3
		}
		if ep.Rank() != want {
			return inconsistent("en-passant square %v on the wrong rank for %v to move", ep, b.sideToMove)
		}
		if b.squares[ep] != NoPiece || b.squares[epVictim(ep, b.sideToMove)] != PieceFromType(b.sideToMove.Other(), PieceTypePawn) {
			return inconsistent("en-passant square %v has no double-pushed pawn behind it", ep)
		}
	}

	if b.ply != len(b.history) {
		return inconsistent("ply %d but %d history entries", b.ply, len(b.history))
	}
	if key := b.ComputeZobrist(); b.zobristKey != key {
		return inconsistent("hash key %#016x, recomputed %#016x", b.zobristKey, key)
	}
	return nil
}

// Validate reports whether Verify finds the board consistent.
func (b *Board) Validate() bool { return b.Verify() == nil }
