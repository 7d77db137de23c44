package chessmg

import "fmt"

// Move encodes a chess move in a 32-bit value. A move only has meaning relative to the
// position it was generated from.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 7 bits, padded square
	moveToShift      = 7  // 7 bits, padded square
	moveCaptureShift = 14 // 4 bits
	movePromoteShift = 18 // 4 bits
	moveFlagShift    = 22 // 2 bits

	moveSquareMask = 0x7F
	movePieceMask  = 0xF
	moveFlagMask   = 0x3
)

// Move flags
const (
	FlagNone      = 0
	FlagEnPassant = 1
	FlagPawnStart = 2 // pawn double push; sets the en-passant square
	FlagCastle    = 3
	// (Promotion is indicated by a non-zero promotion piece)
)

// NoMove is the zero move. Square 0 is a border slot, so no generated move equals it.
const NoMove Move = 0

// NewMove constructs a Move value from components. It panics if a field does not fit its
// bit width; that is a caller bug rather than bad input.
func NewMove(from, to Square, captured, promotion Piece, flag uint8) Move {
	if from < 0 || from >= BoardSquares || to < 0 || to >= BoardSquares {
		panic(fmt.Sprintf("NewMove: square out of range (%d, %d)", from, to))
	}
	if captured > movePieceMask || promotion > movePieceMask || flag > moveFlagMask {
		panic(fmt.Sprintf("NewMove: field out of range (captured=%d promotion=%d flag=%d)", captured, promotion, flag))
	}
	return encodeMove(from, to, captured, promotion, flag)
}

func encodeMove(from, to Square, captured, promotion Piece, flag uint8) Move {
	return Move(uint32(from) |
		uint32(to)<<moveToShift |
		uint32(captured)<<moveCaptureShift |
		uint32(promotion)<<movePromoteShift |
		uint32(flag)<<moveFlagShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & moveSquareMask) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & moveSquareMask) }

// CapturedPiece returns the piece code that was captured (or NoPiece if none).
// En-passant moves carry the captured pawn even though it does not stand on To().
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & movePieceMask) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & movePieceMask) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// Flags returns the special move flag.
func (m Move) Flags() uint8 { return uint8((uint32(m) >> moveFlagShift) & moveFlagMask) }

// IsCapture reports whether the move removes an enemy piece, en passant included.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// String produces coordinate notation (e.g. "e2e4", "e7e8q"); NoMove prints as "0000".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		str += string(promotionLetter[promo.Type()])
	}
	return str
}

var promotionLetter = [7]byte{
	PieceTypeKnight: 'n',
	PieceTypeBishop: 'b',
	PieceTypeRook:   'r',
	PieceTypeQueen:  'q',
}
