package chessmg

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// It generates pseudo-legal moves and lets MakeMove reject illegal ones, reusing one
// buffer per depth so the walk does not allocate after the first visit.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(b *Board, depth int, pc *perftCtx) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := b.generatePseudoInto(pc.bufFor(depth), genAll)
	for _, m := range moves {
		if b.MakeMove(m) {
			nodes += perftRec(b, depth-1, pc)
			b.UnmakeMove()
		}
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		if b.MakeMove(m) {
			result[m] = Perft(b, depth-1)
			b.UnmakeMove()
		}
	}
	return result
}
