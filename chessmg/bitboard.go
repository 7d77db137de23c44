package chessmg

import "math/bits"

// Bitboard is a 64-bit set over compact square indices: bit i is compact square i.
type Bitboard uint64

// bitTable maps the folded lowest-set-bit product back to its compact index.
var bitTable = [64]int{
	63, 30, 3, 32, 25, 41, 22, 33,
	15, 50, 42, 13, 11, 53, 19, 34,
	61, 29, 2, 51, 21, 43, 45, 10,
	18, 47, 1, 54, 9, 57, 0, 35,
	62, 31, 40, 4, 49, 5, 52, 26,
	60, 6, 23, 44, 46, 27, 56, 16,
	7, 39, 48, 24, 59, 14, 12, 55,
	38, 28, 58, 20, 37, 17, 36, 8,
}

var (
	setMask   [64]Bitboard
	clearMask [64]Bitboard
)

func init() {
	for i := 0; i < 64; i++ {
		setMask[i] = 1 << uint(i)
		clearMask[i] = ^setMask[i]
	}
}

// Set adds compact square idx.
func (bb *Bitboard) Set(idx int) { *bb |= setMask[idx] }

// Clear removes compact square idx.
func (bb *Bitboard) Clear(idx int) { *bb &= clearMask[idx] }

// Has reports whether compact square idx is in the set.
func (bb Bitboard) Has(idx int) bool { return bb&setMask[idx] != 0 }

// Count returns the number of squares in the set.
func (bb Bitboard) Count() int { return bits.OnesCount64(uint64(bb)) }

// PopLSB removes the lowest set bit and returns its compact index. bb must be non-empty.
//
// The isolated low bits are folded to 32 bits and multiplied by a de Bruijn-like constant;
// the top six bits of the product index bitTable.
func (bb *Bitboard) PopLSB() int {
	b := *bb ^ (*bb - 1)
	fold := uint32(b&0xffffffff) ^ uint32(b>>32)
	*bb &= *bb - 1
	return bitTable[(fold*0x783a9b23)>>26]
}

// String renders the set as an 8x8 grid, rank 8 first.
func (bb Bitboard) String() string {
	out := make([]byte, 0, 8*9)
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			if bb.Has(SquareOf(file, rank).Compact()) {
				out = append(out, 'x')
			} else {
				out = append(out, '-')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
