package chessmg

// Step offsets on the padded board. A row is 10 slots wide, so +10 is one rank up and
// +1 one file right; the border absorbs any step that leaves the real board.
var (
	knightDirs = [8]Square{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDirs   = [4]Square{-1, -10, 1, 10}
	bishopDirs = [4]Square{-9, -11, 11, 9}
	kingDirs   = [8]Square{-1, -10, 1, 10, -9, -11, 11, 9}
)

// IsSquareAttacked reports whether the given square is attacked by the given color.
// Checks run pawn, knight, diagonal sliders, orthogonal sliders, king, and stop at the first hit.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally forward, so look diagonally behind sq from by's side.
	if by == White {
		if b.squares[sq-11] == WhitePawn || b.squares[sq-9] == WhitePawn {
			return true
		}
	} else {
		if b.squares[sq+11] == BlackPawn || b.squares[sq+9] == BlackPawn {
			return true
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, d := range knightDirs {
		if b.squares[sq+d] == knight {
			return true
		}
	}

	bishop := PieceFromType(by, PieceTypeBishop)
	queen := PieceFromType(by, PieceTypeQueen)
	for _, d := range bishopDirs {
		t := sq + d
		for b.squares[t] == NoPiece {
			t += d
		}
		if p := b.squares[t]; p == bishop || p == queen {
			return true
		}
	}

	rook := PieceFromType(by, PieceTypeRook)
	for _, d := range rookDirs {
		t := sq + d
		for b.squares[t] == NoPiece {
			t += d
		}
		if p := b.squares[t]; p == rook || p == queen {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, d := range kingDirs {
		if b.squares[sq+d] == king {
			return true
		}
	}
	return false
}

// InCheck reports whether the specified color's king is currently in check.
func (b *Board) InCheck(color Color) bool {
	ks := b.kingSquare[color]
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, color.Other())
}
