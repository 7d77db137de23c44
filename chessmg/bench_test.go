package chessmg_test

import (
	"testing"

	"github.com/onenylxus/chess-engine/chessmg"
)

func BenchmarkPerftStart4(b *testing.B) {
	board := chessmg.MustParseFEN(chessmg.FENStartPos)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		chessmg.Perft(board, 4)
	}
}

func BenchmarkPerftKiwipete3(b *testing.B) {
	board := chessmg.MustParseFEN(kiwipeteFEN)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		chessmg.Perft(board, 3)
	}
}

func BenchmarkGenerateMovesInto(b *testing.B) {
	board := chessmg.MustParseFEN(kiwipeteFEN)
	buf := make([]chessmg.Move, 0, 256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := chessmg.MustParseFEN(kiwipeteFEN)
	moves := board.GeneratePseudoMoves()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if board.MakeMove(m) {
				board.UnmakeMove()
			}
		}
	}
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	board := chessmg.MustParseFEN(kiwipeteFEN)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < 64; idx++ {
			board.IsSquareAttacked(chessmg.FromCompact(idx), chessmg.Black)
		}
	}
}
