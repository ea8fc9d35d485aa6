package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/topo/pkg/theme"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// errWriter is where interactive views draw, keeping stdout free for the
// selection.
func errWriter() io.Writer { return os.Stderr }

// ThemePickerModel is the bubbletea model for interactive theme selection.
// Selected is -1 until a theme is chosen.
type ThemePickerModel struct {
	Palettes []theme.Palette
	Cursor   int
	Offset   int
	Height   int
	Selected int
}

func newThemePicker(palettes []theme.Palette) ThemePickerModel {
	return ThemePickerModel{Palettes: palettes, Height: 15, Selected: -1}
}

func (m ThemePickerModel) Init() tea.Cmd {
	return nil
}

func (m ThemePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown", " ":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Palettes))
		case "end", "G":
			m.move(len(m.Palettes))
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by d, clamped to the list, and scrolls to keep it
// visible.
func (m *ThemePickerModel) move(d int) {
	m.Cursor = min(max(m.Cursor+d, 0), len(m.Palettes)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ThemePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Palettes))
	for i := m.Offset; i < end; i++ {
		p := m.Palettes[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		lo, hi := theme.Extremes(p)
		b.WriteString(style.Render(fmt.Sprintf("%s%5d ", cursor, i)))
		b.WriteString(swatches(p))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s / %s", p[lo].Hex(), p[hi].Hex())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Palettes))))
	return b.String()
}
