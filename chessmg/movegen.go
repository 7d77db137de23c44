package chessmg

// filter modes for selective generation
const (
	genAll = iota
	genCaptures
	genQuiets
)

var promotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// generatePseudoInto is the core generator. It appends the side to move's pseudo-legal moves
// matching the filter to dst[:0]. Captures are moves that remove a piece (en passant included);
// everything else, castling and quiet promotions included, is quiet.
func (b *Board) generatePseudoInto(dst []Move, filter int) []Move {
	moves := dst[:0]
	side := b.sideToMove
	if side != White && side != Black {
		return moves
	}
	caps := filter != genQuiets
	quiets := filter != genCaptures

	moves = b.pawnMoves(moves, side, caps, quiets)
	moves = b.leaperMoves(moves, PieceFromType(side, PieceTypeKnight), knightDirs[:], caps, quiets)
	moves = b.sliderMoves(moves, PieceFromType(side, PieceTypeBishop), bishopDirs[:], caps, quiets)
	moves = b.sliderMoves(moves, PieceFromType(side, PieceTypeRook), rookDirs[:], caps, quiets)
	moves = b.sliderMoves(moves, PieceFromType(side, PieceTypeQueen), kingDirs[:], caps, quiets)
	moves = b.leaperMoves(moves, PieceFromType(side, PieceTypeKing), kingDirs[:], caps, quiets)
	if quiets {
		moves = b.castlingMoves(moves, side)
	}
	return moves
}

// pawnMoves appends pushes, double pushes, captures, promotions and en passant.
func (b *Board) pawnMoves(moves []Move, side Color, caps, quiets bool) []Move {
	pawn := PieceFromType(side, PieceTypePawn)
	forward, startRank, lastRank := Square(10), Rank2, Rank7
	captureDirs := [2]Square{9, 11}
	if side == Black {
		forward, startRank, lastRank = -10, Rank7, Rank2
		captureDirs = [2]Square{-9, -11}
	}
	enemyPawn := PieceFromType(side.Other(), PieceTypePawn)

	for i := 0; i < b.pieceCount[pawn]; i++ {
		from := b.pieceList[pawn][i]
		promotes := from.Rank() == lastRank

		if quiets {
			to := from + forward
			if b.squares[to] == NoPiece {
				moves = appendPawnMove(moves, side, from, to, NoPiece, promotes)
				if from.Rank() == startRank && b.squares[to+forward] == NoPiece {
					moves = append(moves, encodeMove(from, to+forward, NoPiece, NoPiece, FlagPawnStart))
				}
			}
		}

		if caps {
			for _, d := range captureDirs {
				to := from + d
				target := b.squares[to]
				if target.IsPiece() && target.Color() != side {
					moves = appendPawnMove(moves, side, from, to, target, promotes)
				} else if to == b.enPassantSquare {
					moves = append(moves, encodeMove(from, to, enemyPawn, NoPiece, FlagEnPassant))
				}
			}
		}
	}
	return moves
}

// appendPawnMove appends one pawn move, or its four promotion variants.
func appendPawnMove(moves []Move, side Color, from, to Square, captured Piece, promotes bool) []Move {
	if !promotes {
		return append(moves, encodeMove(from, to, captured, NoPiece, FlagNone))
	}
	for _, pt := range promotionTypes {
		moves = append(moves, encodeMove(from, to, captured, PieceFromType(side, pt), FlagNone))
	}
	return moves
}

// leaperMoves appends single-step moves of every p (knights, kings) along dirs.
func (b *Board) leaperMoves(moves []Move, p Piece, dirs []Square, caps, quiets bool) []Move {
	side := p.Color()
	for i := 0; i < b.pieceCount[p]; i++ {
		from := b.pieceList[p][i]
		for _, d := range dirs {
			to := from + d
			switch target := b.squares[to]; {
			case target == NoPiece:
				if quiets {
					moves = append(moves, encodeMove(from, to, NoPiece, NoPiece, FlagNone))
				}
			case target == OffBoard || target.Color() == side:
			default:
				if caps {
					moves = append(moves, encodeMove(from, to, target, NoPiece, FlagNone))
				}
			}
		}
	}
	return moves
}

// sliderMoves appends ray moves of every p (bishops, rooks, queens) along dirs, stopping at
// the border, before a friendly piece, or on an enemy piece.
func (b *Board) sliderMoves(moves []Move, p Piece, dirs []Square, caps, quiets bool) []Move {
	side := p.Color()
	for i := 0; i < b.pieceCount[p]; i++ {
		from := b.pieceList[p][i]
		for _, d := range dirs {
			to := from + d
			for b.squares[to] == NoPiece {
				if quiets {
					moves = append(moves, encodeMove(from, to, NoPiece, NoPiece, FlagNone))
				}
				to += d
			}
			if target := b.squares[to]; target != OffBoard && target.Color() != side && caps {
				moves = append(moves, encodeMove(from, to, target, NoPiece, FlagNone))
			}
		}
	}
	return moves
}

// castle describes one castling right: the king's path and the rook's jump.
type castle struct {
	right            CastlingRights
	king             Piece
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	empty            []Square // between king and rook
	safe             []Square // king start, transit and destination
}

var castles = [4]castle{
	{CastlingWhiteK, WhiteKing, E1, G1, H1, F1, []Square{F1, G1}, []Square{E1, F1, G1}},
	{CastlingWhiteQ, WhiteKing, E1, C1, A1, D1, []Square{D1, C1, B1}, []Square{E1, D1, C1}},
	{CastlingBlackK, BlackKing, E8, G8, H8, F8, []Square{F8, G8}, []Square{E8, F8, G8}},
	{CastlingBlackQ, BlackKing, E8, C8, A8, D8, []Square{D8, C8, B8}, []Square{E8, D8, C8}},
}

// castlingMoves appends a castle-flagged king move for each right side can use now.
func (b *Board) castlingMoves(moves []Move, side Color) []Move {
	them := side.Other()
	for i := range castles {
		c := &castles[i]
		if c.king.Color() != side || b.castlingRights&c.right == 0 {
			continue
		}
		if b.squares[c.kingFrom] != c.king || b.squares[c.rookFrom] != PieceFromType(side, PieceTypeRook) {
			continue
		}
		if !b.allEmpty(c.empty) || b.anyAttacked(c.safe, them) {
			continue
		}
		moves = append(moves, encodeMove(c.kingFrom, c.kingTo, NoPiece, NoPiece, FlagCastle))
	}
	return moves
}

func (b *Board) allEmpty(sqs []Square) bool {
	for _, sq := range sqs {
		if b.squares[sq] != NoPiece {
			return false
		}
	}
	return true
}

func (b *Board) anyAttacked(sqs []Square, by Color) bool {
	for _, sq := range sqs {
		if b.IsSquareAttacked(sq, by) {
			return true
		}
	}
	return false
}

// castleFor returns the castling entry whose king lands on to.
func castleFor(to Square) *castle {
	for i := range castles {
		if castles[i].kingTo == to {
			return &castles[i]
		}
	}
	return nil
}

// GeneratePseudoMovesInto appends every pseudo-legal move to dst[:0]. Moves may leave the
// mover's king attacked; MakeMove rejects those.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move { return b.generatePseudoInto(dst, genAll) }

// GeneratePseudoMoves returns every pseudo-legal move for the side to move.
func (b *Board) GeneratePseudoMoves() []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 128))
}

// GenerateCapturesInto appends pseudo-legal captures (en passant included) to dst[:0].
func (b *Board) GenerateCapturesInto(dst []Move) []Move { return b.generatePseudoInto(dst, genCaptures) }

// GenerateCaptures returns pseudo-legal captures.
func (b *Board) GenerateCaptures() []Move { return b.GenerateCapturesInto(make([]Move, 0, 64)) }

// GenerateQuietsInto appends pseudo-legal non-captures (castling and quiet promotions included) to dst[:0].
func (b *Board) GenerateQuietsInto(dst []Move) []Move { return b.generatePseudoInto(dst, genQuiets) }

// GenerateQuiets returns pseudo-legal non-captures.
func (b *Board) GenerateQuiets() []Move { return b.GenerateQuietsInto(make([]Move, 0, 128)) }

// GenerateMovesInto appends the legal moves to dst[:0], filtering pseudo-legal moves through
// MakeMove/UnmakeMove. The board is unchanged on return.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	moves := b.generatePseudoInto(dst, genAll)
	legal := moves[:0]
	for _, m := range moves {
		if b.MakeMove(m) {
			b.UnmakeMove()
			legal = append(legal, m)
		}
	}
	return legal
}

// GenerateMoves generates all legal moves for the current side to move.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 128)) }
