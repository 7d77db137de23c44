package chessmg_test

import (
	"testing"

	"github.com/onenylxus/chess-engine/chessmg"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func moveStrings(moves []chessmg.Move) map[string]chessmg.Move {
	out := make(map[string]chessmg.Move, len(moves))
	for _, m := range moves {
		out[m.String()] = m
	}
	return out
}

func TestStartPositionMoves(t *testing.T) {
	b := chessmg.MustParseFEN(chessmg.FENStartPos)
	if got := len(b.GenerateMoves()); got != 20 {
		t.Fatalf("legal moves: got %d want %d", got, 20)
	}
	if got := len(b.GeneratePseudoMoves()); got != 20 {
		t.Fatalf("pseudo moves: got %d want %d", got, 20)
	}
	if got := len(b.GenerateCaptures()); got != 0 {
		t.Fatalf("captures: got %d want 0", got)
	}
	moves := moveStrings(b.GenerateMoves())
	m, ok := moves["e2e4"]
	if !ok || m.Flags() != chessmg.FlagPawnStart {
		t.Fatalf("e2e4 missing or not flagged as a double push: %v", moves)
	}
	if m := moves["g1f3"]; m.Flags() != chessmg.FlagNone || m.IsCapture() {
		t.Fatalf("g1f3: unexpected flag %d", m.Flags())
	}
}

func TestCapturesQuietsPartition(t *testing.T) {
	for _, fen := range roundTripFENs {
		b := chessmg.MustParseFEN(fen)
		all := b.GeneratePseudoMoves()
		caps := b.GenerateCaptures()
		quiets := b.GenerateQuiets()
		if len(caps)+len(quiets) != len(all) {
			t.Fatalf("%s: captures %d + quiets %d != pseudo %d", fen, len(caps), len(quiets), len(all))
		}
		seen := moveStrings(all)
		for _, m := range caps {
			if !m.IsCapture() {
				t.Fatalf("%s: non-capture %v in captures", fen, m)
			}
			if _, ok := seen[m.String()]; !ok {
				t.Fatalf("%s: capture %v not among pseudo moves", fen, m)
			}
		}
		for _, m := range quiets {
			if m.IsCapture() {
				t.Fatalf("%s: capture %v in quiets", fen, m)
			}
			if _, ok := seen[m.String()]; !ok {
				t.Fatalf("%s: quiet %v not among pseudo moves", fen, m)
			}
		}
	}
}

func TestKiwipeteMoveKinds(t *testing.T) {
	b := chessmg.MustParseFEN(kiwipeteFEN)
	moves := b.GenerateMoves()
	if len(moves) != 48 {
		t.Fatalf("legal moves: got %d want %d", len(moves), 48)
	}
	var caps, castles int
	for _, m := range moves {
		if m.IsCapture() {
			caps++
		}
		if m.Flags() == chessmg.FlagCastle {
			castles++
		}
	}
	if caps != 8 || castles != 2 {
		t.Fatalf("captures %d castles %d: want 8 and 2", caps, castles)
	}
}

func TestEnPassantGeneration(t *testing.T) {
	b := chessmg.MustParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	moves := moveStrings(b.GenerateCaptures())
	m, ok := moves["e5f6"]
	if !ok {
		t.Fatalf("en passant e5f6 not generated: %v", moves)
	}
	if m.Flags() != chessmg.FlagEnPassant || m.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("e5f6: flag %d captured %v", m.Flags(), m.CapturedPiece())
	}
	if _, ok := moves["e5d6"]; ok {
		t.Fatalf("e5d6 generated without an en-passant square on d6")
	}
}

func TestPromotionGeneration(t *testing.T) {
	b := chessmg.MustParseFEN("1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var promos []chessmg.Move
	for _, m := range b.GenerateMoves() {
		if m.IsPromotion() {
			promos = append(promos, m)
		}
	}
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8q", "a7b8r", "a7b8b", "a7b8n"}
	if len(promos) != len(want) {
		t.Fatalf("promotions: got %v want %v", promos, want)
	}
	for i, m := range promos {
		if m.String() != want[i] {
			t.Fatalf("promotion %d: got %s want %s", i, m, want[i])
		}
	}
	if !promos[4].IsCapture() || promos[4].CapturedPiece() != chessmg.BlackRook {
		t.Fatalf("a7b8q should capture the rook")
	}
	if got := len(b.GenerateQuiets()); got != 4+5 {
		t.Fatalf("quiets: got %d want %d", got, 9)
	}
}

func castleMoves(b *chessmg.Board) map[string]bool {
	out := map[string]bool{}
	for _, m := range b.GenerateMoves() {
		if m.Flags() == chessmg.FlagCastle {
			out[m.String()] = true
		}
	}
	return out
}

func TestCastlingAvailability(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want []string
	}{
		{"both sides", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
		{"transit attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1c1"}},
		{"rook path attacked only", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", []string{"e1g1", "e1c1"}},
		{"in check", "4k3/8/8/8/8/8/8/R3K2r w KQ - 0 1", nil},
		{"blocked", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", nil},
		{"no rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", nil},
		{"rook missing", "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1", []string{"e1g1"}},
	}
	for _, c := range cases {
		b := chessmg.MustParseFEN(c.fen)
		got := castleMoves(b)
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
		for _, w := range c.want {
			if !got[w] {
				t.Fatalf("%s: missing %s in %v", c.name, w, got)
			}
		}
	}
}

func TestGenerateIntoDoesNotAllocate(t *testing.T) {
	b := chessmg.MustParseFEN(kiwipeteFEN)
	buf := make([]chessmg.Move, 0, 256)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateMovesInto(buf)
		buf = b.GeneratePseudoMovesInto(buf)
		buf = b.GenerateCapturesInto(buf)
		buf = b.GenerateQuietsInto(buf)
	})
	if allocs != 0 {
		t.Fatalf("generation allocated %.1f times per run", allocs)
	}
}

func TestParseMove(t *testing.T) {
	b := chessmg.MustParseFEN(kiwipeteFEN)
	m, err := b.ParseMove("e1g1")
	if err != nil || m.Flags() != chessmg.FlagCastle {
		t.Fatalf("ParseMove(e1g1): %v flag %d", err, m.Flags())
	}
	m, err = b.ParseMove(" E5F7 ")
	if err != nil || m.CapturedPiece() != chessmg.BlackPawn {
		t.Fatalf("ParseMove(E5F7): %v captured %v", err, m.CapturedPiece())
	}
	for _, s := range []string{"", "e2", "e2e5", "z1a1", "e7e8x", "a2a3q"} {
		if _, err := b.ParseMove(s); err == nil {
			t.Fatalf("ParseMove(%q): expected error", s)
		}
	}
}
