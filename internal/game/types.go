package game

import (
	"fmt"
	"time"
)

// Cell is the value held by one field cell: empty or one of the piece colors.
type Cell int

const (
	Empty Cell = iota
	Blue
	Red
	Green
	Cyan
	Orange
	Purple
	Yellow
)

var cellNames = [...]string{"Empty", "Blue", "Red", "Green", "Cyan", "Orange", "Purple", "Yellow"}

func (c Cell) String() string {
	if c < 0 || int(c) >= len(cellNames) {
		return fmt.Sprintf("Cell(%d)", int(c))
	}
	return cellNames[c]
}

// Position is a (row, column) pair. It is used both as an absolute field
// coordinate and as a piece-relative offset, so it carries no bounds.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Status is the phase of the game state machine.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game over"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

const (
	// HiddenRows is the number of rows above the visible play area used to
	// detect game over.
	HiddenRows = 2

	ScorePerRow          = 100
	RowMultiplier        = 2
	DifficultyMultiplier = 2
)

// GameConfig holds configurable parameters for a game.
type GameConfig struct {
	Rows          int           `json:"rows"` // Visible rows, hidden rows are added on top
	Columns       int           `json:"columns"`
	QueueLength   int           `json:"queue_length"`
	PreviewSlots  int           `json:"preview_slots"` // How many queued kinds a view shows
	FallInterval  time.Duration `json:"fall_interval"`
	TickRate      int           `json:"tick_rate"`       // Ticks per second for a session loop
	LinesPerLevel int           `json:"lines_per_level"` // 0 disables the session's level policy
	MaxLevel      int           `json:"max_level"`
}

// DefaultConfig returns the classic 10x20 configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Rows:          20,
		Columns:       10,
		QueueLength:   4,
		PreviewSlots:  3,
		FallInterval:  2 * time.Second,
		TickRate:      60,
		LinesPerLevel: 10,
		MaxLevel:      8,
	}
}

// Validate reports the first misconfigured field.
func (c GameConfig) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	case c.Columns < MinColumns():
		return fmt.Errorf("columns must be at least %d to spawn every piece, got %d", MinColumns(), c.Columns)
	case c.QueueLength < 2:
		return fmt.Errorf("queue length must be at least 2, got %d", c.QueueLength)
	case c.PreviewSlots < 0 || c.PreviewSlots > c.QueueLength:
		return fmt.Errorf("preview slots must be in [0,%d], got %d", c.QueueLength, c.PreviewSlots)
	case c.FallInterval <= 0:
		return fmt.Errorf("fall interval must be positive, got %s", c.FallInterval)
	case c.TickRate <= 0:
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	case c.LinesPerLevel < 0:
		return fmt.Errorf("lines per level must not be negative, got %d", c.LinesPerLevel)
	}
	return nil
}

// Snapshot is a deep copy of the engine state, safe to hand to another
// goroutine.
type Snapshot struct {
	Cells        [][]Cell      `json:"cells"` // Includes the hidden rows
	Rows         int           `json:"rows"`
	Columns      int           `json:"columns"`
	Active       [4]Position   `json:"active"`
	Ghost        [4]Position   `json:"ghost"`
	ActiveKind   PieceKind     `json:"active_kind"`
	Hold         PieceKind     `json:"hold"`
	HasHold      bool          `json:"has_hold"`
	Upcoming     []PieceKind   `json:"upcoming"`
	Score        int           `json:"score"`
	FinalScore   int           `json:"final_score"`
	Multiplier   int           `json:"multiplier"`
	Lines        int           `json:"lines"`
	FallInterval time.Duration `json:"fall_interval"`
	Status       Status        `json:"status"`
}
