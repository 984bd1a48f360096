package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Engine is the rules core of a game: field, active piece, queue, hold slot,
// score and timing. It is single-threaded; every method runs synchronously
// and none blocks. Hosts that touch an Engine from several goroutines must
// serialize access themselves (see internal/session).
type Engine struct {
	Config GameConfig

	field  *Field
	queue  *PieceQueue
	active *Piece
	hold   *Piece // nil until first use

	score      int
	finalScore int // Score of the game that last ended
	multiplier int
	lines      int

	fallInterval time.Duration
	elapsed      time.Duration // Fall-timer accumulator

	paused   bool
	gameOver bool
}

// NewEngine creates an engine ready to play. rng feeds the piece queue; nil
// picks a randomly seeded generator.
func NewEngine(config GameConfig, rng *rand.Rand) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		Config:       config,
		field:        NewField(config.Rows, config.Columns),
		queue:        NewPieceQueue(config.QueueLength, rng),
		multiplier:   1,
		fallInterval: config.FallInterval,
	}
	e.active = NewPiece(e.queue.Dequeue())
	e.stampActive()
	return e, nil
}

// Status derives the state machine phase from the paused and game-over flags.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusOver
	case e.paused:
		return StatusPaused
	default:
		return StatusPlaying
	}
}

func (e *Engine) Paused() bool   { return e.paused }
func (e *Engine) GameOver() bool { return e.gameOver }

// TogglePause pauses a running game or resumes a paused one. Resuming from
// game over starts the next game, whose board was already reset when the
// previous one ended.
func (e *Engine) TogglePause() {
	if e.paused {
		e.paused = false
		e.gameOver = false
		return
	}
	e.paused = true
}

// StartNewGame discards the current game and starts playing a fresh one from
// any state.
func (e *Engine) StartNewGame() {
	e.resetGame()
	e.paused = false
	e.gameOver = false
}

// Reset is StartNewGame.
func (e *Engine) Reset() {
	e.StartNewGame()
}

// Tick advances the fall timer by elapsed. Once the accumulator reaches the
// fall interval it is zeroed and the active piece drops one row.
func (e *Engine) Tick(elapsed time.Duration) {
	if e.paused {
		return
	}
	e.elapsed += elapsed
	if e.elapsed >= e.fallInterval {
		e.elapsed = 0
		e.stepDown()
	}
}

// IncreaseDifficulty halves the fall interval and multiplies the score
// multiplier. The engine never calls it on its own.
func (e *Engine) IncreaseDifficulty() {
	if e.fallInterval > 1 {
		e.fallInterval /= 2
	}
	e.multiplier *= DifficultyMultiplier
}

// enterGameOver pauses, records the final score and prepares the next game.
// The game-over flag stays set until TogglePause.
func (e *Engine) enterGameOver() {
	e.finalScore = e.score
	e.gameOver = true
	e.paused = true
	e.resetGame()
}

// resetGame clears the field, refills the queue and zeroes the scoring state.
// The active piece is replaced by a fresh draw and stamped.
func (e *Engine) resetGame() {
	e.field.Reset()
	e.queue.Fill()
	e.score = 0
	e.multiplier = 1
	e.lines = 0
	e.fallInterval = e.Config.FallInterval
	e.elapsed = 0
	e.hold = nil
	e.active = NewPiece(e.queue.Dequeue())
	e.stampActive()
}

// Snapshot returns a deep copy of the state for rendering or broadcast.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Cells:        e.field.Cells(),
		Rows:         e.field.Rows(),
		Columns:      e.field.Columns(),
		Active:       e.active.TilePositions(),
		Ghost:        e.GhostTiles(),
		ActiveKind:   e.active.Kind(),
		Upcoming:     e.Upcoming(),
		Score:        e.score,
		FinalScore:   e.finalScore,
		Multiplier:   e.multiplier,
		Lines:        e.lines,
		FallInterval: e.fallInterval,
		Status:       e.Status(),
	}
	s.Hold, s.HasHold = e.HoldKind()
	return s
}

func (e *Engine) Rows() int        { return e.field.Rows() }
func (e *Engine) VisibleRows() int { return e.field.VisibleRows() }
func (e *Engine) Columns() int     { return e.field.Columns() }

// CellAt returns the color at (row, col), including the active piece's cells.
func (e *Engine) CellAt(row, col int) Cell { return e.field.At(row, col) }

func (e *Engine) ActiveTiles() [4]Position { return e.active.TilePositions() }
func (e *Engine) ActiveKind() PieceKind    { return e.active.Kind() }
func (e *Engine) ActiveColor() Cell        { return e.active.Color() }

// HoldKind returns the held kind, or false when the hold slot is empty.
func (e *Engine) HoldKind() (PieceKind, bool) {
	if e.hold == nil {
		return 0, false
	}
	return e.hold.Kind(), true
}

// Upcoming returns the queued kinds a view should preview, front first.
func (e *Engine) Upcoming() []PieceKind {
	return e.queue.Kinds()[:e.Config.PreviewSlots]
}

func (e *Engine) Score() int                  { return e.score }
func (e *Engine) FinalScore() int             { return e.finalScore }
func (e *Engine) Multiplier() int             { return e.multiplier }
func (e *Engine) Lines() int                  { return e.lines }
func (e *Engine) FallInterval() time.Duration { return e.fallInterval }
