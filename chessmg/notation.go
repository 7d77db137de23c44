package chessmg

import "strings"

// ParseMove converts coordinate text (e2e4, e7e8q) into the matching move of this
// position. Castling is written as the king's move (e1g1). The result is pseudo-legal;
// MakeMove still decides whether it leaves the king in check. The error wraps ErrInvalidMove.
func (b *Board) ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) < 4 || len(s) > 5 {
		return NoMove, invalidMove(text, "want 4 or 5 characters")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, invalidMove(text, "bad source square")
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, invalidMove(text, "bad destination square")
	}
	promo := PieceTypeNone
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return NoMove, invalidMove(text, "bad promotion piece")
		}
	}

	var buf [256]Move
	for _, m := range b.generatePseudoInto(buf[:0], genAll) {
		if m.From() == from && m.To() == to && m.PromotionPieceType() == promo {
			return m, nil
		}
	}
	return NoMove, invalidMove(text, "no such move in this position")
}
