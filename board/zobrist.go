package board

import "math/rand"

// Zobrist-style fingerprint tables, initialized once from a fixed seed so
// games (and the tests in section 8 of the spec) are reproducible across
// runs. hashPieceSquare is indexed [id][row][col], hashDirection [id][dir]
// (0=Forward, 1=Backward), hashSide [player] (0=Player1, 1=Player2).
var (
	hashPieceSquare [NumPieces][NumRows][NumCols]uint64
	hashDirection   [NumPieces][2]uint64
	hashSide        [2]uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5371446F6C756D65))
	for id := 0; id < NumPieces; id++ {
		for r := 0; r < NumRows; r++ {
			for c := 0; c < NumCols; c++ {
				hashPieceSquare[id][r][c] = rng.Uint64()
			}
		}
		hashDirection[id][0] = rng.Uint64()
		hashDirection[id][1] = rng.Uint64()
	}
	hashSide[0] = rng.Uint64()
	hashSide[1] = rng.Uint64()
}

func directionIndex(s Status) int {
	if s == Backward {
		return 1
	}
	return 0
}

func sideIndex(p Player) int {
	if p == Player2 {
		return 1
	}
	return 0
}

// Hash computes the 64-bit Zobrist fingerprint of the board from the
// perspective of the side to move. It is a pure function of the
// position: recomputed on every call rather than maintained
// incrementally, matching the variant the source implements (either
// choice is correct per spec section 4.2; this module recomputes).
// Finished pieces contribute nothing.
func Hash(b *Board, toMove Player) uint64 {
	var h uint64
	for id := 0; id < NumPieces; id++ {
		p := b.Pieces[id]
		if p.Status == Finished {
			continue
		}
		h ^= hashPieceSquare[id][p.Row][p.Col]
		h ^= hashDirection[id][directionIndex(p.Status)]
	}
	h ^= hashSide[sideIndex(toMove)]
	return h
}
