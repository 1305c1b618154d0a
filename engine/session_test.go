package engine

import (
	"testing"
	"time"

	"squadro/board"

	"github.com/stretchr/testify/assert"
)

func TestSearch_ReturnsALegalMove(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()

	move, err := s.Search(gs, 30*time.Millisecond)
	assert.NoError(t, err)

	legal := gs.LegalMoves()
	found := false
	for i := 0; i < legal.Len; i++ {
		if legal.Moves[i] == move {
			found = true
		}
	}
	assert.True(t, found, "searched move must be among the legal moves")
}

func TestSearch_SingleLegalMoveShortCircuits(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()

	// Finish four of Player1's pieces so exactly one piece still has a move.
	for id := 1; id < board.PiecesPerSide; id++ {
		gs.Board.Pieces[id].Status = board.Finished
	}

	move, err := s.Search(gs, 30*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, board.Move(0), move)
}

func TestSearch_NoLegalMoveReturnsError(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()
	for id := 0; id < board.PiecesPerSide; id++ {
		gs.Board.Pieces[id].Status = board.Finished
	}

	_, err := s.Search(gs, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrNoLegalMove)
}

func TestSearch_LeavesGameStateUnchanged(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()
	before := *gs

	_, err := s.Search(gs, 30*time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, before, *gs)
}

func TestQuiesce_QuietPositionReturnsExactlyEvaluate(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()
	ctx := NewSearchContext(time.Second)

	// The starting position has no capture available for Player1.
	assert.Zero(t, gs.Board.GenerateCaptureMoves(gs.ToMove).Len)

	got := s.quiesce(gs, -infinity, infinity, quiescenceDepthLimit, ctx)
	assert.Equal(t, Evaluate(gs, gs.ToMove), got)
}

func TestOrderMoves_TTMoveSortsFirst(t *testing.T) {
	s := NewSession(1 << 16)
	gs := NewGameState()
	moves := gs.LegalMoves()
	assert.Greater(t, moves.Len, 1)

	ttMove := moves.Moves[moves.Len-1]
	ordered := s.orderMoves(gs, moves, ttMove, 0)
	assert.Equal(t, ttMove, ordered.Moves[0])
}

func TestUpdateHistory_AccumulatesDepthSquared(t *testing.T) {
	s := NewSession(1 << 16)
	s.updateHistory(2, 10, 3)
	assert.Equal(t, 9, s.history[2][10])
	s.updateHistory(2, 10, 4)
	assert.Equal(t, 9+16, s.history[2][10])
}

func TestStoreKiller_PushesPriorSlotDown(t *testing.T) {
	s := NewSession(1 << 16)
	s.storeKiller(0, board.Move(1))
	s.storeKiller(0, board.Move(2))

	slot0, slot1 := s.isKiller(0, board.Move(2))
	assert.True(t, slot0)
	assert.False(t, slot1)

	slot0, slot1 = s.isKiller(0, board.Move(1))
	assert.False(t, slot0)
	assert.True(t, slot1)
}

func TestTTReplacement_IsMonotonicAcrossASearch(t *testing.T) {
	s := NewSession(1 << 20)
	gs := NewGameState()

	_, err := s.Search(gs, 40*time.Millisecond)
	assert.NoError(t, err)

	entry, ok := s.TT.Probe(gs.Hash)
	if ok {
		assert.GreaterOrEqual(t, entry.Depth, 1)
	}
}
