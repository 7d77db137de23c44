package chessmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/onenylxus/chess-engine/chessmg"
)

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		out[m.String()] = referencePerft(&b, depth-1)
		undo()
	}
	return out
}

// Root moves and their subtree sizes must agree with an independent generator.
func TestDivideMatchesDragontooth(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, c := range perftSuite {
		b := chessmg.MustParseFEN(c.fen)
		ours := make(map[string]uint64)
		for m, n := range chessmg.PerftDivide(b, depth) {
			ours[m.String()] = n
		}
		theirs := referenceDivide(c.fen, depth)
		for mv, want := range theirs {
			got, ok := ours[mv]
			if !ok {
				t.Fatalf("%s: root move %s missing", c.name, mv)
			}
			if got != want {
				t.Fatalf("%s: %s depth%d: got %d want %d", c.name, mv, depth, got, want)
			}
		}
		if len(ours) != len(theirs) {
			t.Fatalf("%s: %d root moves, dragontoothmg has %d", c.name, len(ours), len(theirs))
		}
	}
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range roundTripFENs {
		b := chessmg.MustParseFEN(fen)
		ref := dragontoothmg.ParseFen(fen)
		want := map[string]bool{}
		for _, m := range ref.GenerateLegalMoves() {
			want[m.String()] = true
		}
		got := b.GenerateMoves()
		if len(got) != len(want) {
			t.Fatalf("%s: got %d legal moves want %d", fen, len(got), len(want))
		}
		for _, m := range got {
			if !want[m.String()] {
				t.Fatalf("%s: %v not legal according to dragontoothmg", fen, m)
			}
		}
	}
}
