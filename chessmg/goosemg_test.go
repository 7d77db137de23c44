package chessmg_test

import (
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"github.com/onenylxus/chess-engine/chessmg"
)

// goosemg is a magic-bitboard generator written independently of dragontoothmg.
func TestDivideMatchesGoosemg(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, c := range perftSuite {
		ref, err := goosemg.ParseFEN(c.fen)
		if err != nil {
			t.Fatalf("%s: goosemg.ParseFEN: %v", c.name, err)
		}
		theirs := make(map[string]uint64)
		for m, n := range goosemg.PerftDivide(ref, depth) {
			theirs[m.String()] = n
		}

		b := chessmg.MustParseFEN(c.fen)
		ours := chessmg.PerftDivide(b, depth)
		if len(ours) != len(theirs) {
			t.Fatalf("%s: %d root moves, goosemg has %d", c.name, len(ours), len(theirs))
		}
		for m, got := range ours {
			want, ok := theirs[m.String()]
			if !ok {
				t.Fatalf("%s: root move %v unknown to goosemg", c.name, m)
			}
			if got != want {
				t.Fatalf("%s: %v depth%d: got %d want %d", c.name, m, depth, got, want)
			}
		}
	}
}
