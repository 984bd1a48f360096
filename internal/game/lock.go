package game

// CalculateScore returns the points for clearing rows with one placement,
// before the difficulty multiplier is applied.
func CalculateScore(rowsCleared int) int {
	return rowsCleared * RowMultiplier * ScorePerRow
}

// lockActive writes the active piece into the field for good, clears and
// scores full rows, checks for game over and spawns the next piece.
func (e *Engine) lockActive() {
	e.stampActive()

	cleared := e.field.ClearFullRows()
	e.lines += cleared
	e.score += CalculateScore(cleared) * e.multiplier

	if e.field.CheckGameOver() {
		// The next game's board and piece are already set up.
		e.enterGameOver()
		return
	}

	e.active = NewPiece(e.queue.Dequeue())
	e.stampActive()
}
