package engine

import (
	"time"

	"squadro/board"
)

// maxSearchDepth bounds the killer-move table: iterative deepening never
// runs past this many plies in one search.
const maxSearchDepth = 64

// infinity is the alpha-beta sentinel bound, comfortably clear of
// WinScore so negating it never overflows.
const infinity = 1 << 30

// Session holds everything one search owns: the transposition table,
// killer and history move-ordering tables, and an optional diagnostic
// logger. Mirrors the teacher's per-game Session so concurrent games
// never share mutable search state.
type Session struct {
	TT      *TranspositionTable
	logger  *Logger
	killers [maxSearchDepth][2]board.Move
	history [board.NumPieces][board.NumCells]int
}

// NewSession creates a session with its own transposition table sized
// to approximately ttBytes.
func NewSession(ttBytes int) *Session {
	return &Session{TT: NewTranspositionTable(ttBytes)}
}

// SetLogger attaches a diagnostic logger; nil disables logging.
func (s *Session) SetLogger(l *Logger) { s.logger = l }

// Clear resets the transposition table and move-ordering tables for a
// new game.
func (s *Session) Clear() {
	if s.TT != nil {
		s.TT.Clear()
	}
	s.clearKillers()
	s.clearHistory()
}

func (s *Session) clearKillers() {
	for i := range s.killers {
		s.killers[i][0] = board.NullMove
		s.killers[i][1] = board.NullMove
	}
}

func (s *Session) clearHistory() {
	for i := range s.history {
		for j := range s.history[i] {
			s.history[i][j] = 0
		}
	}
}

func (s *Session) storeKiller(ply int, m board.Move) {
	if ply >= maxSearchDepth || s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

func (s *Session) isKiller(ply int, m board.Move) (slot0, slot1 bool) {
	if ply >= maxSearchDepth {
		return false, false
	}
	return s.killers[ply][0] == m, s.killers[ply][1] == m
}

func (s *Session) updateHistory(pieceID, destIdx, depth int) {
	s.history[pieceID][destIdx] += depth * depth
}

// scoredMove pairs a candidate with its destination cell (for history
// indexing) and its move-ordering score.
type scoredMove struct {
	move    board.Move
	destIdx int
	score   int
}

// orderMoves ranks moves per section 4.6.4: TT move, then captures,
// then killers, then history — each determined by a read-only
// simulation on a stack-allocated board clone, never touching the
// heap. Sorting uses a fixed-capacity (5) buffer and a stable
// insertion sort so ties keep enumeration order.
func (s *Session) orderMoves(gs *GameState, moves board.MoveList, ttMove board.Move, ply int) board.MoveList {
	var scored [board.PiecesPerSide]scoredMove
	n := moves.Len
	for i := 0; i < n; i++ {
		m := moves.Moves[i]
		cp := gs.Board.Clone()
		rec, _ := cp.ApplyMove(m, gs.ToMove)
		destIdx := board.CellIndex(rec.DestRow, rec.DestCol)
		scored[i] = scoredMove{move: m, destIdx: destIdx, score: s.moveScore(m, rec.CaptureCount > 0, destIdx, ttMove, ply)}
	}

	for i := 1; i < n; i++ {
		for j := i; j > 0 && scored[j].score > scored[j-1].score; j-- {
			scored[j], scored[j-1] = scored[j-1], scored[j]
		}
	}

	var out board.MoveList
	for i := 0; i < n; i++ {
		out.Moves[i] = scored[i].move
	}
	out.Len = n
	return out
}

func (s *Session) moveScore(m board.Move, capture bool, destIdx int, ttMove board.Move, ply int) int {
	if ttMove != board.NullMove && m == ttMove {
		return 10_000_000
	}
	if capture {
		return 9_000_000
	}
	if s0, s1 := s.isKiller(ply, m); s0 {
		return 8_000_000
	} else if s1 {
		return 7_000_000
	}
	return s.history[int(m)][destIdx]
}

// orderCaptures ranks quiescence candidates by how many pieces their
// simulation bumps, richest chain first.
func (s *Session) orderCaptures(gs *GameState, moves board.MoveList) board.MoveList {
	var counts [board.PiecesPerSide]int
	n := moves.Len
	for i := 0; i < n; i++ {
		cp := gs.Board.Clone()
		rec, _ := cp.ApplyMove(moves.Moves[i], gs.ToMove)
		counts[i] = rec.CaptureCount
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && counts[j] > counts[j-1]; j-- {
			counts[j], counts[j-1] = counts[j-1], counts[j]
			moves.Moves[j], moves.Moves[j-1] = moves.Moves[j-1], moves.Moves[j]
		}
	}
	return moves
}

// Search runs iterative deepening from gs's current position within
// budget, returning the best move found. Returns ErrNoLegalMove if gs
// has no legal move (unreachable for a non-terminal state).
func (s *Session) Search(gs *GameState, budget time.Duration) (board.Move, error) {
	s.clearKillers()
	s.clearHistory()

	moves := gs.LegalMoves()
	if moves.Len == 0 {
		return board.NullMove, ErrNoLegalMove
	}
	if moves.Len == 1 {
		return moves.Moves[0], nil
	}

	ctx := NewSearchContext(budget)
	best := moves.Moves[0]

	for depth := 1; depth <= maxSearchDepth; depth++ {
		move, score, completed := s.searchRoot(gs, depth, ctx)
		if !completed {
			break
		}
		best = move

		if s.logger != nil {
			probes, hits := s.TT.Stats()
			s.logger.Log(SearchLogEntry{
				Event: "iteration", Depth: depth, Move: move.String(),
				Score: score, Nodes: ctx.Nodes(), TTProbes: probes, TTHits: hits,
			})
		}

		if abs(score) >= WinScore-depth {
			break
		}
		if ctx.Expired() {
			break
		}
	}

	if s.logger != nil {
		s.logger.Log(SearchLogEntry{Event: "final", Move: best.String(), Nodes: ctx.Nodes()})
	}

	return best, nil
}

// searchRoot searches to a fixed depth, updating its running best move
// every time a child improves on it — so an aborted iteration still
// yields a usable result rather than discarding everything searched so
// far (section 4.6.2).
func (s *Session) searchRoot(gs *GameState, depth int, ctx *SearchContext) (board.Move, int, bool) {
	moves := gs.LegalMoves()
	ttMove := board.NullMove
	if entry, ok := s.TT.Probe(gs.Hash); ok {
		ttMove = entry.BestMove
	}
	ordered := s.orderMoves(gs, moves, ttMove, 0)

	alpha, beta := -infinity, infinity
	best := ordered.Moves[0]
	bestScore := -infinity
	any := false

	for i := 0; i < ordered.Len; i++ {
		m := ordered.Moves[i]
		rec, err := gs.ApplyMove(m)
		if err != nil {
			continue
		}
		score := -s.alphaBeta(gs, depth-1, 1, -beta, -alpha, ctx)
		gs.UndoMove(rec)

		if ctx.stopped.Load() {
			break
		}
		any = true
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if !any {
		return board.NullMove, 0, false
	}

	s.TT.Store(gs.Hash, depth, bestScore, TTFlagExact, best)
	return best, bestScore, true
}

// alphaBeta is negamax alpha-beta: the return value is always from the
// perspective of gs.ToMove at entry. Grounded on the teacher's
// alphaBeta (engine/session.go), generalized from explicit white/black
// branching to a sign-flipping recursion matching the source's
// perspective-parameterized evaluate(state, player).
func (s *Session) alphaBeta(gs *GameState, depth, ply int, alpha, beta int, ctx *SearchContext) int {
	ctx.nodes++
	if ctx.nodes&1023 == 0 && ctx.Expired() {
		return 0
	}

	if gs.IsTerminal() {
		return Evaluate(gs, gs.ToMove)
	}
	if depth == 0 {
		return s.quiesce(gs, alpha, beta, quiescenceDepthLimit, ctx)
	}

	alphaOrig := alpha
	hash := gs.Hash

	ttMove := board.NullMove
	if entry, ok := s.TT.Probe(hash); ok {
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			switch entry.Flag {
			case TTFlagExact:
				return entry.Score
			case TTFlagLower:
				if entry.Score >= beta {
					return entry.Score
				}
			case TTFlagUpper:
				if entry.Score <= alpha {
					return entry.Score
				}
			}
		}
	}

	moves := gs.LegalMoves()
	ordered := s.orderMoves(gs, moves, ttMove, ply)

	bestMove := board.NullMove
	bestScore := -infinity

	for i := 0; i < ordered.Len; i++ {
		m := ordered.Moves[i]
		rec, err := gs.ApplyMove(m)
		if err != nil {
			continue
		}
		score := -s.alphaBeta(gs, depth-1, ply+1, -beta, -alpha, ctx)
		destIdx := board.CellIndex(rec.DestRow, rec.DestCol)
		capture := rec.CaptureCount > 0
		gs.UndoMove(rec)

		if ctx.stopped.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !capture {
				s.storeKiller(ply, m)
				s.updateHistory(int(m), destIdx, depth)
			}
			break
		}
	}

	if !ctx.stopped.Load() {
		var flag TTFlag
		switch {
		case bestScore <= alphaOrig:
			flag = TTFlagUpper
		case bestScore >= beta:
			flag = TTFlagLower
		default:
			flag = TTFlagExact
		}
		s.TT.Store(hash, depth, bestScore, flag, bestMove)
	}

	return bestScore
}

// quiescenceDepthLimit bounds how many plies quiesce may recurse along a
// capture line before it is forced to settle for the stand-pat score,
// grounded on the source's AIPlayer.cpp quiesce, which seeds depth_left
// at 0 and cuts off at depth_left <= -4: the same four-ply allowance,
// counted down to zero here instead of down through negative numbers.
const quiescenceDepthLimit = 4

// quiesce extends the search along capture lines only, to avoid
// evaluating a position the instant before an obvious recapture.
// depthLeft is seeded at quiescenceDepthLimit and decremented each
// recursive call; it reaches 0 once a tactical line has run four plies
// deep, at which point the stand-pat score is returned regardless of
// remaining captures.
func (s *Session) quiesce(gs *GameState, alpha, beta, depthLeft int, ctx *SearchContext) int {
	ctx.nodes++
	if ctx.nodes&1023 == 0 && ctx.Expired() {
		return 0
	}

	standPat := Evaluate(gs, gs.ToMove)
	if gs.IsTerminal() {
		return standPat
	}
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depthLeft == 0 {
		return standPat
	}

	captures := s.orderCaptures(gs, gs.Board.GenerateCaptureMoves(gs.ToMove))
	for i := 0; i < captures.Len; i++ {
		m := captures.Moves[i]
		rec, err := gs.ApplyMove(m)
		if err != nil {
			continue
		}
		score := -s.quiesce(gs, -beta, -alpha, depthLeft-1, ctx)
		gs.UndoMove(rec)

		if ctx.stopped.Load() {
			return 0
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return alpha
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

