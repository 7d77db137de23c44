package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/onenylxus/chess-engine/chessmg"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	verify := flag.Bool("verify", false, "Cross-check per-move counts against a reference generator")
	ref := flag.String("ref", "dragontoothmg", "Reference generator for -verify: dragontoothmg or goosemg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chessmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		theirs, err := referenceDivide(*ref, *fen, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reference %s: %v\n", *ref, err)
			os.Exit(2)
		}
		if n := verifyDivide(board, theirs, *ref, *depth); n > 0 {
			fmt.Fprintf(os.Stderr, "%d root moves disagree with %s\n", n, *ref)
			os.Exit(2)
		}
		fmt.Println("verify: ok")
		return
	}

	// Optional divide output
	if *divide {
		div := divideByText(chessmg.PerftDivide(board, *depth))
		keys := maps.Keys(div)
		slices.Sort(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
			sum += div[k]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += chessmg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func divideByText(div map[chessmg.Move]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(div))
	for m, n := range div {
		out[m.String()] = n
	}
	return out
}

// referenceDivide computes per-root-move leaf counts with the named reference generator.
func referenceDivide(ref, fen string, depth int) (map[string]uint64, error) {
	switch ref {
	case "dragontoothmg":
		b := dragontoothmg.ParseFen(fen)
		out := make(map[string]uint64)
		for _, m := range b.GenerateLegalMoves() {
			undo := b.Apply(m)
			out[m.String()] = referencePerft(&b, depth-1)
			undo()
		}
		return out, nil
	case "goosemg":
		b, err := goosemg.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		out := make(map[string]uint64)
		for m, n := range goosemg.PerftDivide(b, depth) {
			out[m.String()] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown reference %q", ref)
}

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

// verifyDivide logs every root move whose count differs from the reference and returns
// how many did.
func verifyDivide(board *chessmg.Board, theirs map[string]uint64, ref string, depth int) int {
	ours := divideByText(chessmg.PerftDivide(board, depth))

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	bad := 0
	for _, k := range keys {
		got, okGot := ours[k]
		want, okWant := theirs[k]
		switch {
		case !okWant:
			log.Printf("%s: generated here (%d) but not by %s", k, got, ref)
		case !okGot:
			log.Printf("%s: missing here, %s counts %d", k, ref, want)
		case got != want:
			log.Printf("%s: got %d want %d", k, got, want)
		default:
			continue
		}
		bad++
	}
	return bad
}
