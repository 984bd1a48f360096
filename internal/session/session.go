// Package session hosts a game.Engine for concurrent callers: an input
// goroutine enqueues actions, a loop goroutine drains them and advances the
// fall timer, and every step publishes a snapshot.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amalg/go-tetris/internal/game"
)

// Action is a player command delivered to the loop.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHold
	ActionTogglePause
	ActionNewGame
)

var actionNames = [...]string{
	"move-left", "move-right", "soft-drop", "hard-drop",
	"rotate-cw", "rotate-ccw", "hold", "toggle-pause", "new-game",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Engine is the part of *game.Engine a session drives.
type Engine interface {
	MoveLeft() bool
	MoveRight() bool
	SoftDrop() bool
	HardDrop() int
	RotateClockwise() bool
	RotateCounterClockwise() bool
	Hold()
	TogglePause()
	StartNewGame()
	Tick(elapsed time.Duration)
	IncreaseDifficulty()

	GameOver() bool
	Lines() int
	FinalScore() int
	Multiplier() int
	FallInterval() time.Duration
	Snapshot() game.Snapshot
}

// Session owns one engine. All engine access happens under mu.
type Session struct {
	ID     string
	Config game.GameConfig

	engine  Engine
	actions chan Action
	mu      sync.Mutex
	onTick  func(game.Snapshot) // Callback after each step with a COPY of state

	level    int // Difficulty increases applied so far in this game
	lastOver bool
}

// New creates a session. rng seeds the piece queue; nil picks a random seed.
func New(config game.GameConfig, rng *rand.Rand) (*Session, error) {
	engine, err := game.NewEngine(config, rng)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return NewWithEngine(config, engine), nil
}

// NewWithEngine wraps an existing engine. config supplies the tick rate and
// level policy.
func NewWithEngine(config game.GameConfig, engine Engine) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Config:  config,
		engine:  engine,
		actions: make(chan Action, 256),
	}
	log.Printf("[SESSION %s] Created %dx%d field, queue %d, fall every %s",
		s.shortID(), config.Columns, config.Rows, config.QueueLength, config.FallInterval)
	return s
}

// OnTick sets a callback invoked after every step with a copy of the state.
// It must be set before Run.
func (s *Session) OnTick(fn func(game.Snapshot)) {
	s.onTick = fn
}

// Enqueue hands an action to the loop without blocking. Actions are dropped
// when the buffer is full.
func (s *Session) Enqueue(a Action) bool {
	select {
	case s.actions <- a:
		return true
	default:
		log.Printf("[SESSION %s] Dropped %s, action buffer full", s.shortID(), a)
		return false
	}
}

// Run steps the session at the configured tick rate until ctx is done.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.Config.TickRate))
	defer ticker.Stop()

	log.Printf("[SESSION %s] Running at %d ticks/s", s.shortID(), s.Config.TickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[SESSION %s] Stopped: %v", s.shortID(), ctx.Err())
			return ctx.Err()
		case now := <-ticker.C:
			s.Step(now.Sub(last))
			last = now
		}
	}
}

// Step drains pending actions, advances the fall timer by elapsed and
// publishes a snapshot.
// The snapshot is copied under the lock and published after releasing it, so
// the callback may call back into the session.
func (s *Session) Step(elapsed time.Duration) {
	s.mu.Lock()

	s.drainActions()
	s.engine.Tick(elapsed)
	s.applyLevelPolicy()
	s.noteGameOver()

	snapshot := s.engine.Snapshot()

	s.mu.Unlock()

	if s.onTick != nil {
		s.onTick(snapshot)
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Level returns how many difficulty increases the current game has had.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// drainActions applies every queued action. MUST be called while s.mu is
// held.
func (s *Session) drainActions() {
	for {
		select {
		case a := <-s.actions:
			s.apply(a)
		default:
			return
		}
	}
}

func (s *Session) apply(a Action) {
	e := s.engine
	switch a {
	case ActionMoveLeft:
		e.MoveLeft()
	case ActionMoveRight:
		e.MoveRight()
	case ActionSoftDrop:
		e.SoftDrop()
	case ActionHardDrop:
		e.HardDrop()
	case ActionRotateCW:
		e.RotateClockwise()
	case ActionRotateCCW:
		e.RotateCounterClockwise()
	case ActionHold:
		e.Hold()
	case ActionTogglePause:
		wasOver := e.GameOver()
		e.TogglePause()
		if wasOver {
			s.level = 0
			log.Printf("[SESSION %s] New game after game over", s.shortID())
		}
	case ActionNewGame:
		e.StartNewGame()
		s.level = 0
		log.Printf("[SESSION %s] New game started", s.shortID())
	default:
		log.Printf("[SESSION %s] Ignoring unknown action %d", s.shortID(), int(a))
	}
}

// applyLevelPolicy raises the difficulty once per LinesPerLevel lines, up to
// MaxLevel.
func (s *Session) applyLevelPolicy() {
	per := s.Config.LinesPerLevel
	if per == 0 || s.engine.GameOver() {
		return
	}
	target := min(s.engine.Lines()/per, s.Config.MaxLevel)
	for s.level < target {
		s.engine.IncreaseDifficulty()
		s.level++
		log.Printf("[SESSION %s] Level %d: fall every %s, multiplier x%d",
			s.shortID(), s.level, s.engine.FallInterval(), s.engine.Multiplier())
	}
}

// noteGameOver logs the transition into game over once.
func (s *Session) noteGameOver() {
	over := s.engine.GameOver()
	if over && !s.lastOver {
		s.level = 0
		log.Printf("[SESSION %s] Game over, final score %d", s.shortID(), s.engine.FinalScore())
	}
	s.lastOver = over
}

func (s *Session) shortID() string {
	return s.ID[:8]
}
