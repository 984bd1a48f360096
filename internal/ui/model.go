package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
	"github.com/amalg/go-tetris/internal/session"
)

// stateUpdateMsg carries a new snapshot from the session loop.
type stateUpdateMsg game.Snapshot

// errMsg carries an error.
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// Model is the Bubbletea model for the game.
type Model struct {
	session  *session.Session
	states   chan game.Snapshot
	state    *game.Snapshot
	theme    Theme
	err      error
	quitting bool
}

// NewModel creates a TUI model fed by the session's snapshots. It installs
// the session's OnTick callback, so it must be called before the session
// runs.
func NewModel(s *session.Session, theme Theme) Model {
	states := make(chan game.Snapshot, 1)
	s.OnTick(func(snap game.Snapshot) {
		// Keep only the newest snapshot when the view falls behind.
		select {
		case states <- snap:
		default:
			select {
			case <-states:
			default:
			}
			select {
			case states <- snap:
			default:
			}
		}
	})
	initial := s.Snapshot()
	return Model{
		session: s,
		states:  states,
		state:   &initial,
		theme:   theme,
	}
}

// Init starts listening for state updates from the session.
func (m Model) Init() tea.Cmd {
	return waitForState(m.states)
}

// Update handles incoming messages (key presses, state updates).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateUpdateMsg:
		state := game.Snapshot(msg)
		m.state = &state
		return m, waitForState(m.states)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	board := RenderBoard(m.state, m.theme)
	hud := RenderHUD(m.state, m.session.Level(), m.theme)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// keyActions maps keys to session actions.
var keyActions = map[string]session.Action{
	"left":  session.ActionMoveLeft,
	"a":     session.ActionMoveLeft,
	"right": session.ActionMoveRight,
	"d":     session.ActionMoveRight,
	"down":  session.ActionSoftDrop,
	"s":     session.ActionSoftDrop,
	"up":    session.ActionRotateCW,
	"w":     session.ActionRotateCW,
	"x":     session.ActionRotateCW,
	"z":     session.ActionRotateCCW,
	" ":     session.ActionHardDrop,
	"c":     session.ActionHold,
	"p":     session.ActionTogglePause,
	"n":     session.ActionNewGame,
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	default:
		if a, ok := keyActions[key]; ok {
			m.session.Enqueue(a)
		}
	}
	return m, nil
}

// waitForState returns a Cmd that waits for the next snapshot.
func waitForState(states <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return errMsg{err: fmt.Errorf("session closed")}
		}
		return stateUpdateMsg(state)
	}
}
