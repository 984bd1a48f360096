package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/amalg/go-tetris/internal/game"
)

// Theme maps cell colors to terminal colors. It is built once at startup and
// only read afterwards.
type Theme map[game.Cell]lipgloss.Color

// DefaultTheme returns the classic tetromino palette.
func DefaultTheme() Theme {
	return Theme{
		game.Empty:  lipgloss.Color("#1a1a2e"),
		game.Blue:   lipgloss.Color("#4466ff"),
		game.Red:    lipgloss.Color("#ff4444"),
		game.Green:  lipgloss.Color("#44dd66"),
		game.Cyan:   lipgloss.Color("#44ddff"),
		game.Orange: lipgloss.Color("#ff9933"),
		game.Purple: lipgloss.Color("#aa55ff"),
		game.Yellow: lipgloss.Color("#ffdd33"),
	}
}

var (
	boardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#444466"))

	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// RenderBoard draws the visible rows of the field. The hidden rows above the
// play area are never shown. Each cell is 2 characters wide for a square-ish
// appearance.
func RenderBoard(snap *game.Snapshot, theme Theme) string {
	if snap == nil || len(snap.Cells) == 0 {
		return "Waiting for game state..."
	}

	ghost := make(map[game.Position]bool, len(snap.Ghost))
	if snap.Status == game.StatusPlaying {
		for _, p := range snap.Ghost {
			ghost[p] = true
		}
	}
	activeColor := snap.ActiveKind.Color()

	rows := make([]string, 0, snap.Rows-game.HiddenRows)
	for r := game.HiddenRows; r < snap.Rows; r++ {
		var b strings.Builder
		for c := 0; c < snap.Columns; c++ {
			cell := snap.Cells[r][c]
			switch {
			case cell != game.Empty:
				b.WriteString(renderBlock(theme, cell))
			case ghost[game.Position{Row: r, Col: c}]:
				b.WriteString(renderGhost(theme, activeColor))
			default:
				b.WriteString(renderBlock(theme, game.Empty))
			}
		}
		rows = append(rows, b.String())
	}

	return boardBorderStyle.Render(strings.Join(rows, "\n"))
}

func renderBlock(theme Theme, cell game.Cell) string {
	style := lipgloss.NewStyle().Background(theme[game.Empty])
	if cell == game.Empty {
		return style.Render("  ")
	}
	return style.Foreground(theme[cell]).Render("██")
}

func renderGhost(theme Theme, cell game.Cell) string {
	return lipgloss.NewStyle().
		Background(theme[game.Empty]).
		Foreground(theme[cell]).
		Faint(true).
		Render("░░")
}

// RenderPreview draws a kind in a small box for the next and hold panels.
func RenderPreview(kind game.PieceKind, ok bool, theme Theme) string {
	var rows []string
	grid := [game.PreviewRows][game.PreviewCols]game.Cell{}
	if ok {
		grid = game.Preview(kind)
	}
	for r := 0; r < game.PreviewRows; r++ {
		var b strings.Builder
		for c := 0; c < game.PreviewCols; c++ {
			b.WriteString(renderBlock(theme, grid[r][c]))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// RenderHUD renders score, queue preview, hold slot and game status.
func RenderHUD(snap *game.Snapshot, level int, theme Theme) string {
	if snap == nil {
		return ""
	}

	var parts []string
	parts = append(parts, titleStyle.Render("TETRIS"), "")
	parts = append(parts,
		hudLine("Score", fmt.Sprint(snap.Score)),
		hudLine("Lines", fmt.Sprint(snap.Lines)),
		hudLine("Level", fmt.Sprint(level)),
		hudLine("Bonus", fmt.Sprintf("x%d", snap.Multiplier)),
		"",
	)

	switch snap.Status {
	case game.StatusPaused:
		parts = append(parts, pausedStyle.Render("PAUSED"), "   Press [P] to resume", "")
	case game.StatusOver:
		parts = append(parts,
			gameOverStyle.Render("GAME OVER"),
			fmt.Sprintf("Score: %d", snap.FinalScore),
			"   Press [P] to play again",
			"",
		)
	}

	parts = append(parts, labelStyle.Render("Next"))
	for _, kind := range snap.Upcoming {
		parts = append(parts, RenderPreview(kind, true, theme))
	}
	parts = append(parts, "", labelStyle.Render("Hold"), RenderPreview(snap.Hold, snap.HasHold, theme))

	parts = append(parts, "", helpStyle.Render("←/→ Move | ↑ Rotate | Z CCW | ↓ Drop\nSpace Hard drop | C Hold | P Pause\nN New game | Q Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}

// hudLine pads the label so values line up regardless of glyph width.
func hudLine(label, value string) string {
	return labelStyle.Render(runewidth.FillRight(label, 7)) + value
}
