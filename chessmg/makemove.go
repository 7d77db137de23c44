package chessmg

// castlePerm[sq] is ANDed into the castling rights whenever a move starts or ends on sq,
// so moving a king or rook, or capturing a rook at home, drops the matching rights.
var castlePerm [BoardSquares]CastlingRights

func init() {
	for sq := range castlePerm {
		castlePerm[sq] = CastlingAll
	}
	castlePerm[A1] &^= CastlingWhiteQ
	castlePerm[E1] &^= CastlingWhiteK | CastlingWhiteQ
	castlePerm[H1] &^= CastlingWhiteK
	castlePerm[A8] &^= CastlingBlackQ
	castlePerm[E8] &^= CastlingBlackK | CastlingBlackQ
	castlePerm[H8] &^= CastlingBlackK
}

// epVictim returns the square of the pawn taken when mover captures en passant onto to.
func epVictim(to Square, mover Color) Square {
	if mover == White {
		return to - 10
	}
	return to + 10
}

func (b *Board) pushHistory(m Move) {
	b.history = append(b.history, undo{
		move:           m,
		castlingRights: b.castlingRights,
		enPassant:      b.enPassantSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
		zobristKey:     b.zobristKey,
	})
	b.ply++
}

func (b *Board) popHistory(op string) undo {
	n := len(b.history)
	if n == 0 {
		panic(op + ": empty history")
	}
	u := b.history[n-1]
	b.history = b.history[:n-1]
	b.ply--
	return u
}

// MakeMove applies a pseudo-legal move generated for this position. It returns false if the
// move leaves the mover's king attacked, in which case the board has already been restored.
func (b *Board) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	side := b.sideToMove
	flag := m.Flags()

	b.pushHistory(m)

	switch flag {
	case FlagEnPassant:
		b.removePiece(epVictim(to, side))
	case FlagCastle:
		c := castleFor(to)
		b.movePiece(c.rookFrom, c.rookTo)
	}

	b.hashEnPassant()
	b.enPassantSquare = NoSquare
	b.hashCastling()
	b.castlingRights &= castlePerm[from] & castlePerm[to]
	b.hashCastling()

	b.halfmoveClock++
	if m.IsCapture() {
		if flag != FlagEnPassant {
			b.removePiece(to)
		}
		b.halfmoveClock = 0
	}

	if b.squares[from].Type() == PieceTypePawn {
		b.halfmoveClock = 0
		if flag == FlagPawnStart {
			if side == White {
				b.enPassantSquare = from + 10
			} else {
				b.enPassantSquare = from - 10
			}
			b.hashEnPassant()
		}
	}

	// movePiece keeps the king square cache current when the king moves.
	b.movePiece(from, to)
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.removePiece(to)
		b.placePiece(to, promo)
	}

	if side == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = side.Other()
	b.hashSide()

	if ks := b.kingSquare[side]; ks != NoSquare && b.IsSquareAttacked(ks, b.sideToMove) {
		b.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove reverses the most recent MakeMove. It panics if there is nothing to unmake.
func (b *Board) UnmakeMove() {
	u := b.popHistory("UnmakeMove")
	m := u.move
	if m == NoMove {
		panic("UnmakeMove: last history entry is a null move")
	}
	from, to := m.From(), m.To()

	b.restoreState(u)
	side := b.sideToMove

	switch m.Flags() {
	case FlagEnPassant:
		b.placePiece(epVictim(to, side), m.CapturedPiece())
	case FlagCastle:
		c := castleFor(to)
		b.movePiece(c.rookTo, c.rookFrom)
	}

	if m.IsPromotion() {
		b.removePiece(to)
		b.placePiece(from, PieceFromType(side, PieceTypePawn))
	} else {
		b.movePiece(to, from)
	}

	if m.IsCapture() && m.Flags() != FlagEnPassant {
		b.placePiece(to, m.CapturedPiece())
	}
}

// restoreState swaps the saved rights, en-passant square and clocks back in and gives the move
// back to the side that made it, toggling the matching hash terms.
func (b *Board) restoreState(u undo) {
	b.hashEnPassant()
	b.hashCastling()
	b.castlingRights = u.castlingRights
	b.enPassantSquare = u.enPassant
	b.halfmoveClock = u.halfmoveClock
	b.fullmoveNumber = u.fullmoveNumber
	b.hashEnPassant()
	b.hashCastling()

	b.sideToMove = b.sideToMove.Other()
	b.hashSide()
}

// MakeNullMove passes the turn without moving a piece: the side flips, any en-passant square is
// cleared and the halfmove clock advances. It panics if the side to move is in check.
func (b *Board) MakeNullMove() {
	side := b.sideToMove
	if b.InCheck(side) {
		panic("MakeNullMove: side to move is in check")
	}
	b.pushHistory(NoMove)

	b.hashEnPassant()
	b.enPassantSquare = NoSquare
	b.halfmoveClock++
	if side == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = side.Other()
	b.hashSide()
}

// UnmakeNullMove restores the board to the state prior to MakeNullMove.
func (b *Board) UnmakeNullMove() {
	u := b.popHistory("UnmakeNullMove")
	if u.move != NoMove {
		panic("UnmakeNullMove: last history entry is " + u.move.String())
	}
	b.restoreState(u)
}

// Apply plays a legal move and returns a closure that undoes it. It panics if the move is illegal.
func (b *Board) Apply(m Move) func() {
	if !b.MakeMove(m) {
		panic("Apply: illegal move " + m.String())
	}
	return b.UnmakeMove
}
