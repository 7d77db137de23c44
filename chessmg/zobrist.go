package chessmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
// Square-indexed tables use compact indices.
var zobristPiece [pieceKinds][64]uint64 // Zobrist keys for piece (index by piece code) on each square
var zobristCastle [16]uint64            // Zobrist keys for each castling rights state (0-15)
var zobristEnPassant [64]uint64         // Zobrist keys for the en-passant target square
var zobristSide uint64                  // Zobrist key for side to move (White to move)

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed for reproducibility in tests
	rnd := rand.New(rand.NewSource(0xC0DE))

	for _, p := range pieces {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for sq := 0; sq < 64; sq++ {
		zobristEnPassant[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the Zobrist hash of the board from scratch. Make and unmake
// maintain the key incrementally; this is for initialization and verification.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64

	for idx := 0; idx < 64; idx++ {
		p := b.squares[compactToPadded[idx]]
		if p.IsPiece() {
			key ^= zobristPiece[p][idx]
		}
	}

	if b.sideToMove == White {
		key ^= zobristSide
	}

	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.Compact()]
	}

	key ^= zobristCastle[b.castlingRights&CastlingAll]
	return key
}

func (b *Board) hashPiece(p Piece, sq Square) { b.zobristKey ^= zobristPiece[p][sq.Compact()] }

func (b *Board) hashSide() { b.zobristKey ^= zobristSide }

func (b *Board) hashCastling() { b.zobristKey ^= zobristCastle[b.castlingRights] }

func (b *Board) hashEnPassant() {
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.Compact()]
	}
}
