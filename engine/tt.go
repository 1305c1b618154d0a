package engine

import "squadro/board"

// TTFlag indicates what kind of bound a stored score represents.
type TTFlag uint8

const (
	TTFlagNone  TTFlag = 0
	TTFlagExact TTFlag = 1
	TTFlagLower TTFlag = 2 // fail-high: real score >= stored score
	TTFlagUpper TTFlag = 3 // fail-low: real score <= stored score
)

// TTEntry is a single transposition table slot. Hash is the full 64-bit
// Zobrist fingerprint (not a truncated tag): the table is small enough
// relative to a 64-bit keyspace that the spec calls for exact collision
// detection rather than the teacher's upper-32-bits compromise.
type TTEntry struct {
	Hash     uint64
	BestMove board.Move
	Score    int
	Depth    int
	Flag     TTFlag
}

// TranspositionTable is a fixed-capacity, single-entry-per-bucket table
// indexed by hash modulo capacity. Replacement is always-replace-if-
// deeper: a bucket is only overwritten when empty or when the
// incoming depth is at least the depth already stored there.
type TranspositionTable struct {
	buckets []TTEntry
	mask    uint64
	probes  int64
	hits    int64
}

const ttEntryBytes = 40

// NewTranspositionTable builds a table sized to approximately sizeBytes,
// rounded down to a power of two bucket count for fast index masking.
func NewTranspositionTable(sizeBytes int) *TranspositionTable {
	if sizeBytes <= 0 {
		sizeBytes = 64 * 1024 * 1024
	}
	want := uint64(sizeBytes) / ttEntryBytes
	n := uint64(1)
	for n*2 <= want {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	return &TranspositionTable{
		buckets: make([]TTEntry, n),
		mask:    n - 1,
	}
}

func (tt *TranspositionTable) index(hash uint64) uint64 { return hash & tt.mask }

// Probe returns the stored entry for hash and true only when a slot is
// occupied and its full hash matches exactly.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++
	e := tt.buckets[tt.index(hash)]
	if e.Flag == TTFlagNone || e.Hash != hash {
		return TTEntry{}, false
	}
	tt.hits++
	return e, true
}

// Store writes (hash, depth, score, bound, best) into its bucket,
// replacing the current occupant only if the bucket is empty or depth
// is at least as deep as what is already stored.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, flag TTFlag, best board.Move) {
	idx := tt.index(hash)
	cur := &tt.buckets[idx]
	if cur.Flag != TTFlagNone && depth < cur.Depth {
		return
	}
	*cur = TTEntry{Hash: hash, BestMove: best, Score: score, Depth: depth, Flag: flag}
}

// Clear empties every bucket and resets the diagnostic counters.
func (tt *TranspositionTable) Clear() {
	for i := range tt.buckets {
		tt.buckets[i] = TTEntry{}
	}
	tt.probes, tt.hits = 0, 0
}

// Stats returns the running probe and hit counts since the table was
// created or last cleared.
func (tt *TranspositionTable) Stats() (probes, hits int64) { return tt.probes, tt.hits }

// Len returns the bucket count.
func (tt *TranspositionTable) Len() int { return len(tt.buckets) }

// Hashfull returns the permille of buckets in use, sampling the first
// 1000 (or fewer) buckets for speed.
func (tt *TranspositionTable) Hashfull() int {
	sample := uint64(1000)
	if sample > uint64(len(tt.buckets)) {
		sample = uint64(len(tt.buckets))
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		if tt.buckets[i].Flag != TTFlagNone {
			used++
		}
	}
	return int(used * 1000 / int(sample))
}
