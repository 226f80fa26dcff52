package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/plotsvg/pkg/tools"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// ToolListModel is the bubbletea model for interactive tool selection.
type ToolListModel struct {
	Tools    []tools.Tool
	Cursor   int
	Selected *tools.Tool
	Height   int
	Offset   int
}

// NewToolListModel creates a tool picker over list.
func NewToolListModel(list []tools.Tool) ToolListModel {
	return ToolListModel{Tools: list, Height: len(list)}
}

func (m ToolListModel) Init() tea.Cmd {
	return nil
}

func (m ToolListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Tools)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Tools) == 0 {
				return m, tea.Quit
			}
			t := m.Tools[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m ToolListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Tools))
	for i := m.Offset; i < end; i++ {
		t := m.Tools[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, t.Name, listDimStyle.Render(t.Description))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Tools))))
	return b.String()
}

// pickTool runs the picker and returns the chosen tool, or nil when the
// user quits.
func pickTool(list []tools.Tool) (*tools.Tool, error) {
	final, err := tea.NewProgram(NewToolListModel(list)).Run()
	if err != nil {
		return nil, err
	}
	return final.(ToolListModel).Selected, nil
}
