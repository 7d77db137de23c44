package chessmg_test

import (
	"testing"

	"github.com/onenylxus/chess-engine/chessmg"
)

func playMoves(t *testing.T, b *chessmg.Board, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := b.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if !b.MakeMove(m) {
			t.Fatalf("move %s rejected in %s", s, b.ToFEN())
		}
	}
}

func TestCheckmate_FoolsMate(t *testing.T) {
	b := chessmg.MustParseFEN(chessmg.FENStartPos)
	playMoves(t, b, "f2f3", "e7e5", "g2g4", "d8h4")
	if !b.InCheck(chessmg.White) {
		t.Fatalf("expected White to be in check")
	}
	if b.HasLegalMoves() {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if !b.InCheckmate() {
		t.Fatalf("expected checkmate for White")
	}
	if b.InStalemate() {
		t.Fatalf("not stalemate in mate position")
	}
	if got, want := b.ToFEN(), "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"; got != want {
		t.Fatalf("FEN: got %q want %q", got, want)
	}
}

func TestStalemate_Basic(t *testing.T) {
	b := chessmg.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.InCheck(chessmg.Black) {
		t.Fatalf("expected Black not in check")
	}
	if b.HasLegalMoves() {
		t.Fatalf("expected no legal moves for Black in stalemate")
	}
	if !b.InStalemate() || b.InCheckmate() {
		t.Fatalf("expected stalemate, not checkmate")
	}
}

func TestCheckButNotMate(t *testing.T) {
	b := chessmg.MustParseFEN("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	if b.InCheckmate() || b.InStalemate() || !b.HasLegalMoves() {
		t.Fatalf("black can walk out of check")
	}
}

func TestDrawBy50(t *testing.T) {
	b := chessmg.MustParseFEN("4k3/8/8/8/8/8/4P3/4K1N1 w - - 99 80")
	if b.IsDrawBy50() {
		t.Fatalf("99 half-moves is not yet a draw")
	}
	playMoves(t, b, "g1f3")
	if !b.IsDrawBy50() {
		t.Fatalf("expected fifty-move draw at clock %d", b.HalfmoveClock())
	}
	playMoves(t, b, "e8d7", "e2e4")
	if b.IsDrawBy50() || b.HalfmoveClock() != 0 {
		t.Fatalf("pawn move should reset the clock, got %d", b.HalfmoveClock())
	}
}

func TestThreefoldRepetition(t *testing.T) {
	b := chessmg.MustParseFEN(chessmg.FENStartPos)
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	playMoves(t, b, shuffle...)
	if !b.IsRepetition() {
		t.Fatalf("expected repetition after one shuffle")
	}
	if b.IsDrawByRepetition() {
		t.Fatalf("two occurrences are not a threefold repetition")
	}
	playMoves(t, b, shuffle...)
	if !b.IsDrawByRepetition() {
		t.Fatalf("expected threefold repetition after two shuffles")
	}
}

func TestRepetitionBrokenByPawnMove(t *testing.T) {
	b := chessmg.MustParseFEN(chessmg.FENStartPos)
	playMoves(t, b, "g1f3", "g8f6", "f3g1", "f6g8", "e2e3", "e7e6")
	playMoves(t, b, "g1f3", "g8f6", "f3g1", "f6g8")
	if !b.IsRepetition() {
		t.Fatalf("expected repetition of the position after e2e3 e7e6")
	}
	if b.IsDrawByRepetition() {
		t.Fatalf("positions before the pawn moves must not count")
	}
}

func TestNoRepetitionAtLoad(t *testing.T) {
	b := chessmg.MustParseFEN(chessmg.FENStartPos)
	if b.IsRepetition() || b.IsDrawByRepetition() {
		t.Fatalf("freshly loaded board reports a repetition")
	}
}
