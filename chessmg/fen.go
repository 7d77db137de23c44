package chessmg

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character, or 0 for non-pieces.
func charFromPiece(p Piece) byte {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return 0
	}
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The halfmove clock and fullmove number are optional and default to 0 and 1.
// On error no board is returned; the error wraps ErrInvalidFEN and is a *FENError.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("record", fen, "want 4 to 6 space-separated fields")
	}

	board := &Board{}
	board.reset()

	// 1. Piece placement, written raw into squares; shadow structures are derived afterwards
	if err := board.scanPlacement(fields[0]); err != nil {
		return nil, err
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, fenError("side", fields[1], "side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var right CastlingRights
			switch fields[2][i] {
			case 'K':
				right = CastlingWhiteK
			case 'Q':
				right = CastlingWhiteQ
			case 'k':
				right = CastlingBlackK
			case 'q':
				right = CastlingBlackQ
			default:
				return nil, fenError("castling", fields[2], "invalid castling rights character")
			}
			if board.castlingRights&right != 0 {
				return nil, fenError("castling", fields[2], "repeated castling right")
			}
			board.castlingRights |= right
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError("en passant", fields[3], "not a square")
		}
		want := Rank6
		if board.sideToMove == Black {
			want = Rank3
		}
		if ep.Rank() != want {
			return nil, fenError("en passant", fields[3], "target square on the wrong rank for the side to move")
		}
		mover := board.sideToMove
		if board.squares[ep] != NoPiece || board.squares[epVictim(ep, mover)] != PieceFromType(mover.Other(), PieceTypePawn) {
			return nil, fenError("en passant", fields[3], "no pawn that could have just double-pushed past the target")
		}
		board.enPassantSquare = ep
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, fenError("halfmove", fields[4], "halfmove clock is not a non-negative number")
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 0 {
			return nil, fenError("fullmove", fields[5], "fullmove number is not a non-negative number")
		}
		board.fullmoveNumber = fullmove
	}

	board.indexPieces()
	if board.InCheck(board.sideToMove.Other()) {
		return nil, fenError("side", fields[1], "side not to move is in check")
	}
	board.zobristKey = board.ComputeZobrist()
	return board, nil
}

// scanPlacement fills squares from the placement field and checks piece counts.
func (b *Board) scanPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError("placement", placement, "want 8 ranks")
	}

	var count [pieceKinds]int
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return fenError("placement", rankStr, "empty rank description")
		}
		rank := Rank8 - i
		file := FileA
		prevDigit := false
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				// Digit: skip that many files (empty squares)
				if prevDigit {
					return fenError("placement", rankStr, "adjacent empty-square counts")
				}
				prevDigit = true
				file += int(ch - '0')
				if file > 8 {
					return fenError("placement", rankStr, "too many squares in rank")
				}
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return fenError("placement", rankStr, "unrecognized piece character "+strconv.QuoteRune(rune(ch)))
			}
			if file >= 8 {
				return fenError("placement", rankStr, "too many squares in rank")
			}
			if piece.Type() == PieceTypePawn && (rank == Rank1 || rank == Rank8) {
				return fenError("placement", rankStr, "pawn on the first or last rank")
			}
			count[piece]++
			b.squares[SquareOf(file, rank)] = piece
			file++
			prevDigit = false
		}
		if file != 8 {
			return fenError("placement", rankStr, "rank does not have 8 columns")
		}
	}

	if count[WhiteKing] != 1 || count[BlackKing] != 1 {
		return fenError("placement", placement, "each side needs exactly one king")
	}
	if count[WhitePawn] > 8 || count[BlackPawn] > 8 {
		return fenError("placement", placement, "more than 8 pawns for one side")
	}
	for _, p := range pieces {
		if count[p] > maxPieceInstances {
			return fenError("placement", placement, "too many pieces of one kind")
		}
	}
	return nil
}

// MustParseFEN is ParseFEN for trusted input; it panics on error.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFEN replaces the position held by b. On error b is left unchanged.
func (b *Board) LoadFEN(fen string) error {
	nb, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	nb.history = b.history[:0]
	if nb.history == nil {
		nb.history = make([]undo, 0, 256)
	}
	*b = *nb
	return nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := Rank8; rank >= Rank1; rank-- {
		emptyCount := 0
		for file := FileA; file <= FileH; file++ {
			p := b.squares[SquareOf(file, rank)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	sb.WriteString(b.castlingRights.String())
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}
