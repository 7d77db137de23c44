package chessmg

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	var buf [256]Move
	for _, m := range b.generatePseudoInto(buf[:0], genAll) {
		if b.MakeMove(m) {
			b.UnmakeMove()
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// IsDrawBy50 reports a 50-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawBy50() bool {
	return b.halfmoveClock >= 100
}

// repetitions counts earlier occurrences of the current position among the positions played
// since the last capture or pawn move. Only positions reached through MakeMove are known.
func (b *Board) repetitions() int {
	start := len(b.history) - b.halfmoveClock
	if start < 0 {
		start = 0
	}
	matches := 0
	for i := start; i < len(b.history); i++ {
		if b.history[i].zobristKey == b.zobristKey {
			matches++
		}
	}
	return matches
}

// IsRepetition reports whether the current position already occurred since the last
// irreversible move. Searches usually score this as a draw.
func (b *Board) IsRepetition() bool { return b.repetitions() > 0 }

// IsDrawByRepetition reports a threefold repetition: the current position plus two earlier
// occurrences since the last irreversible move.
//
// Notes:
//   - The Zobrist key encodes side to move, castling rights and the en-passant square,
//     which are required for the repetition rule.
func (b *Board) IsDrawByRepetition() bool { return b.repetitions() >= 2 }
