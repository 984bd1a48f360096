package game

// Every action follows the same discipline: erase the active piece from the
// field, mutate it, fit-check against the settled stack, revert on failure and
// stamp it back. Fit-checking after the erase keeps the piece from colliding
// with its own old cells.

// MoveLeft shifts the active piece one column left. It reports whether the
// move stuck.
func (e *Engine) MoveLeft() bool {
	return e.tryMove(0, -1)
}

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight() bool {
	return e.tryMove(0, 1)
}

// RotateClockwise rotates the active piece, reverting with the opposite
// rotation when the new state does not fit.
func (e *Engine) RotateClockwise() bool {
	if e.paused {
		return false
	}
	e.clearActive()
	e.active.RotateCW()
	ok := e.pieceFits(e.active)
	if !ok {
		e.active.RotateCCW()
	}
	e.stampActive()
	return ok
}

// RotateCounterClockwise is the mirror of RotateClockwise.
func (e *Engine) RotateCounterClockwise() bool {
	if e.paused {
		return false
	}
	e.clearActive()
	e.active.RotateCCW()
	ok := e.pieceFits(e.active)
	if !ok {
		e.active.RotateCW()
	}
	e.stampActive()
	return ok
}

// SoftDrop moves the active piece down one row and restarts the fall timer.
// When the piece cannot descend it locks in place and the next piece spawns.
// It reports whether the piece moved.
func (e *Engine) SoftDrop() bool {
	if e.paused {
		return false
	}
	e.elapsed = 0
	return e.stepDown()
}

// HardDrop drops the active piece until it locks and returns the number of
// rows it fell.
func (e *Engine) HardDrop() int {
	if e.paused {
		return 0
	}
	e.elapsed = 0
	rows := 0
	for e.stepDown() {
		rows++
	}
	return rows
}

// Hold banks the active piece. With an empty hold slot the next queued piece
// becomes active; otherwise the active and held pieces swap. Both end up at
// their spawn state.
func (e *Engine) Hold() {
	if e.paused {
		return
	}
	e.clearActive()
	prev := e.active
	if e.hold == nil {
		e.active = NewPiece(e.queue.Dequeue())
	} else {
		e.active = e.hold
	}
	e.hold = prev
	e.hold.Reset()
	e.active.Reset()
	e.stampActive()
}

// GhostTiles returns the cells the active piece would occupy after a hard
// drop. The field is left untouched.
func (e *Engine) GhostTiles() [4]Position {
	e.clearActive()
	ghost := *e.active
	for {
		ghost.Move(1, 0)
		if !e.pieceFits(&ghost) {
			ghost.Move(-1, 0)
			break
		}
	}
	e.stampActive()
	return ghost.TilePositions()
}

func (e *Engine) tryMove(dRow, dCol int) bool {
	if e.paused {
		return false
	}
	e.clearActive()
	e.active.Move(dRow, dCol)
	ok := e.pieceFits(e.active)
	if !ok {
		e.active.Move(-dRow, -dCol)
	}
	e.stampActive()
	return ok
}

// stepDown moves the active piece down one row, locking it when it cannot
// descend. Reports whether the piece moved.
func (e *Engine) stepDown() bool {
	e.clearActive()
	e.active.Move(1, 0)
	if e.pieceFits(e.active) {
		e.stampActive()
		return true
	}
	e.active.Move(-1, 0)
	e.lockActive()
	return false
}

// pieceFits reports whether every cell of p lands on an empty field cell.
func (e *Engine) pieceFits(p *Piece) bool {
	for _, pos := range p.TilePositions() {
		if !e.field.IsEmpty(pos.Row, pos.Col) {
			return false
		}
	}
	return true
}

func (e *Engine) stampActive() {
	e.stamp(e.active, e.active.Color())
}

func (e *Engine) clearActive() {
	e.stamp(e.active, Empty)
}

func (e *Engine) stamp(p *Piece, c Cell) {
	for _, pos := range p.TilePositions() {
		e.field.Set(pos.Row, pos.Col, c)
	}
}
