package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/clueboard/pkg/board"
	"github.com/matzehuels/clueboard/pkg/media"
)

// Browser styles
var (
	browserSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browserNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browserDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	browserTagStyle      = lipgloss.NewStyle().Foreground(colorYellow)
)

// maxBrowserContent caps clue content length in the list; attachments and
// long URLs are summarized.
const maxBrowserContent = 60

// BoardModel is the bubbletea model for browsing a board read-only in the
// terminal. Left/right switch categories, up/down move the clue cursor.
type BoardModel struct {
	Categories  []board.Category
	Connections []board.Connection
	Cat         int // selected category index
	Clue        int // selected clue index within the category
}

// NewBoardModel snapshots a board into a browsable model.
func NewBoardModel(b *board.Board) BoardModel {
	return BoardModel{
		Categories:  b.Categories(),
		Connections: b.Connections(),
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.Cat > 0 {
			m.Cat--
			m.Clue = 0
		}
	case "right", "l", "tab":
		if m.Cat < len(m.Categories)-1 {
			m.Cat++
			m.Clue = 0
		}
	case "up", "k":
		if m.Clue > 0 {
			m.Clue--
		}
	case "down", "j":
		if m.Clue < len(m.current().Clues)-1 {
			m.Clue++
		}
	}
	return m, nil
}

func (m BoardModel) current() board.Category {
	if m.Cat < 0 || m.Cat >= len(m.Categories) {
		return board.Category{}
	}
	return m.Categories[m.Cat]
}

func (m BoardModel) View() string {
	if len(m.Categories) == 0 {
		return browserDimStyle.Render("Empty board. Press q to quit.") + "\n"
	}

	var sb strings.Builder

	// Category tabs
	var tabs []string
	for i, c := range m.Categories {
		label := fmt.Sprintf("%s (%d)", c.Title, len(c.Clues))
		if i == m.Cat {
			tabs = append(tabs, browserSelectedStyle.Render(label))
		} else {
			tabs = append(tabs, browserDimStyle.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabs, browserDimStyle.Render("  |  ")))
	sb.WriteString("\n\n")

	// Clue list for the selected category
	cur := m.current()
	if len(cur.Clues) == 0 {
		sb.WriteString(browserDimStyle.Render("  (no clues)"))
		sb.WriteString("\n")
	}
	for i, cl := range cur.Clues {
		cursor := "  "
		style := browserNormalStyle
		if i == m.Clue {
			cursor = browserSelectedStyle.Render("> ")
			style = browserSelectedStyle
		}
		sb.WriteString(cursor)
		if t := media.Classify(cl.Content); t != media.TypeText {
			sb.WriteString(browserTagStyle.Render("["+string(t)+"] "))
		}
		sb.WriteString(style.Render(clueSummary(cl.Content)))
		sb.WriteString("\n")
	}

	// Connections touching the selected category
	var touching []string
	for _, conn := range m.Connections {
		if conn.Touches(cur.ID) {
			touching = append(touching, fmt.Sprintf("%s %s %s",
				m.titleOf(conn.Source), iconArrow, m.titleOf(conn.Target)))
		}
	}
	if len(touching) > 0 {
		sb.WriteString("\n")
		sb.WriteString(browserDimStyle.Render("connections: " + strings.Join(touching, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(browserDimStyle.Render("←/→ category · ↑/↓ clue · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m BoardModel) titleOf(categoryID string) string {
	for _, c := range m.Categories {
		if c.ID == categoryID {
			return c.Title
		}
	}
	return categoryID
}

func clueSummary(content string) string {
	if strings.HasPrefix(content, "data:") {
		return "(attached media)"
	}
	if len(content) > maxBrowserContent {
		return content[:maxBrowserContent-3] + "..."
	}
	return content
}
