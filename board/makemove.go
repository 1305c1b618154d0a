package board

// MoveList is a fixed-capacity (5) move buffer: Squadro never has more than
// five legal moves for a side, so enumeration never allocates.
type MoveList struct {
	Moves [PiecesPerSide]Move
	Len   int
}

func (l *MoveList) push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the populated prefix of Moves.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Len] }

// travelDelta returns the per-step (row,col) delta for a piece moving in
// its current direction: Player1 pieces change column only, Player2
// pieces change row only (spec section 4.1).
func travelDelta(owner Player, status Status) (dr, dc int) {
	sign := 1
	if status == Backward {
		sign = -1
	}
	if owner == Player1 {
		return 0, sign
	}
	return sign, 0
}

// clampEdge clamps an off-board step to the nearest edge on the travel
// axis: the far edge (NumCols-1) when moving Forward, the entry edge (0)
// when moving Backward. The lane coordinate (the axis the piece never
// moves along) is left untouched.
func clampEdge(owner Player, status Status, r, c int) (int, int) {
	edge := 0
	if status == Forward {
		edge = farEdge()
	}
	if owner == Player1 {
		c = edge
	} else {
		r = edge
	}
	return r, c
}

// resetSquare is where a bumped piece lands: the entry cell of its
// current direction. A Forward victim resets to its lane's starting
// square; a Backward victim resets to the opposite edge of the same lane
// (its status is not changed by the bump).
func resetSquare(owner Player, rank int, status Status) (row, col int) {
	if status == Forward {
		return startSquare(owner, rank)
	}
	if owner == Player1 {
		return rank + 1, farEdge()
	}
	return farEdge(), rank + 1
}

func inBounds(r, c int) bool {
	return r >= 0 && r < NumRows && c >= 0 && c < NumCols
}

// restoreCaptures undoes every bump recorded in rec, in reverse order,
// without touching the mover. It is shared by UndoMove and the
// mid-simulation rollback ApplyMove uses when a move turns out illegal
// partway through (e.g. a blocked reset square or a blocked destination).
func (b *Board) restoreCaptures(rec *MoveRecord) {
	for i := rec.CaptureCount - 1; i >= 0; i-- {
		e := rec.Captures[i]
		owner := b.Pieces[e.ID].Owner
		rank := e.ID % PiecesPerSide
		resetRow, resetCol := resetSquare(owner, rank, b.Pieces[e.ID].Status)
		b.Grid[cellIndex(resetRow, resetCol)] = CellEmpty
		b.Pieces[e.ID].Row = e.Row
		b.Pieces[e.ID].Col = e.Col
		b.Grid[cellIndex(e.Row, e.Col)] = Cell(e.ID)
	}
}

// abort rolls back every effect applied so far (captures, then the
// mover's own vacated start cell) and returns ErrIllegalMove. The board
// is left exactly as it was before ApplyMove was called.
func (b *Board) abort(id int, start Piece, rec *MoveRecord) (MoveRecord, error) {
	b.restoreCaptures(rec)
	b.Pieces[id] = start
	b.Grid[cellIndex(start.Row, start.Col)] = Cell(id)
	return MoveRecord{}, ErrIllegalMove
}

// ApplyMove executes move for side. On success it mutates the board and
// returns the record UndoMove needs to reverse it. On ErrIllegalMove the
// board is left completely unchanged.
func (b *Board) ApplyMove(move Move, side Player) (MoveRecord, error) {
	id := int(move)
	if id < 0 || id >= NumPieces {
		return MoveRecord{}, ErrIllegalMove
	}
	mover := b.Pieces[id]
	if mover.Owner != side || mover.Status == Finished {
		return MoveRecord{}, ErrIllegalMove
	}

	rec := MoveRecord{
		Mover:          move,
		StartRow:       mover.Row,
		StartCol:       mover.Col,
		OriginalStatus: mover.Status,
	}

	dr, dc := travelDelta(mover.Owner, mover.Status)
	remainingPower := mover.CurrentPower()

	b.Grid[cellIndex(mover.Row, mover.Col)] = CellEmpty

	r, c := mover.Row, mover.Col
	inChain := false

	for {
		if !inChain {
			if remainingPower == 0 {
				break
			}
			remainingPower--
		}

		nr, nc := r+dr, c+dc
		if !inBounds(nr, nc) {
			r, c = clampEdge(mover.Owner, mover.Status, r, c)
			break
		}

		occ := b.at(nr, nc)
		if occ == CellEmpty {
			r, c = nr, nc
			if inChain {
				break
			}
			continue
		}

		occupant := b.Pieces[occ]
		if occupant.Owner == mover.Owner {
			return b.abort(id, mover, &rec)
		}
		if rec.CaptureCount >= MaxCaptures {
			return b.abort(id, mover, &rec)
		}

		rank := occupant.ID % PiecesPerSide
		resetRow, resetCol := resetSquare(occupant.Owner, rank, occupant.Status)
		if b.at(resetRow, resetCol) != CellEmpty {
			return b.abort(id, mover, &rec)
		}

		rec.Captures[rec.CaptureCount] = CaptureEntry{ID: occupant.ID, Row: occupant.Row, Col: occupant.Col}
		rec.CaptureCount++
		b.Grid[cellIndex(occupant.Row, occupant.Col)] = CellEmpty
		b.Pieces[occupant.ID].Row = resetRow
		b.Pieces[occupant.ID].Col = resetCol
		b.Grid[cellIndex(resetRow, resetCol)] = Cell(occupant.ID)

		r, c = nr, nc
		inChain = true
	}

	finalStatus := mover.Status
	switch mover.Owner {
	case Player1:
		if mover.Status == Forward && c == NumCols-1 {
			finalStatus = Backward
		} else if mover.Status == Backward && c == 0 {
			finalStatus = Finished
		}
	default:
		if mover.Status == Forward && r == NumRows-1 {
			finalStatus = Backward
		} else if mover.Status == Backward && r == 0 {
			finalStatus = Finished
		}
	}

	if finalStatus != Finished {
		if b.at(r, c) != CellEmpty {
			return b.abort(id, mover, &rec)
		}
		b.Grid[cellIndex(r, c)] = Cell(id)
	}

	b.Pieces[id].Row = r
	b.Pieces[id].Col = c
	b.Pieces[id].Status = finalStatus

	rec.DestRow, rec.DestCol = r, c
	rec.FinalStatus = finalStatus
	return rec, nil
}

// UndoMove reverses a MoveRecord produced by ApplyMove, restoring the
// board bit-for-bit, including every bumped piece.
func (b *Board) UndoMove(rec MoveRecord) {
	id := int(rec.Mover)
	if rec.FinalStatus != Finished {
		b.Grid[cellIndex(rec.DestRow, rec.DestCol)] = CellEmpty
	}
	b.Pieces[id].Status = rec.OriginalStatus
	b.Pieces[id].Row = rec.StartRow
	b.Pieces[id].Col = rec.StartCol
	b.Grid[cellIndex(rec.StartRow, rec.StartCol)] = Cell(id)
	b.restoreCaptures(&rec)
}

// IsLegal reports whether move is currently legal for side, via a
// read-only simulation on a stack copy of the board.
func (b *Board) IsLegal(move Move, side Player) bool {
	cp := b.Clone()
	_, err := cp.ApplyMove(move, side)
	return err == nil
}

// GenerateLegalMoves enumerates side's legal moves by read-only
// simulation, in piece-rank order (0..4).
func (b *Board) GenerateLegalMoves(side Player) MoveList {
	var list MoveList
	base := 0
	if side == Player2 {
		base = PiecesPerSide
	}
	for i := 0; i < PiecesPerSide; i++ {
		id := base + i
		if b.Pieces[id].Status == Finished {
			continue
		}
		cp := b.Clone()
		if _, err := cp.ApplyMove(Move(id), side); err == nil {
			list.push(Move(id))
		}
	}
	return list
}

// GenerateCaptureMoves enumerates only side's legal moves that capture at
// least one opponent piece, for quiescence search.
func (b *Board) GenerateCaptureMoves(side Player) MoveList {
	var list MoveList
	base := 0
	if side == Player2 {
		base = PiecesPerSide
	}
	for i := 0; i < PiecesPerSide; i++ {
		id := base + i
		if b.Pieces[id].Status == Finished {
			continue
		}
		cp := b.Clone()
		rec, err := cp.ApplyMove(Move(id), side)
		if err == nil && rec.CaptureCount > 0 {
			list.push(Move(id))
		}
	}
	return list
}
