// Package app hosts the terminal UI around the lesson screen.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskdrill/internal/screens/lesson"
	"github.com/abhisek/riskdrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screen *lesson.Model
	width  int
	height int
}

func newAppModel(driver lesson.Driver, userID, topic string) AppModel {
	return AppModel{
		screen: lesson.New(driver, userID, topic),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.screen.Topic(), m.screen.Tier(), m.width)

	hints := m.screen.KeyHints()
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.screen.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program for one lesson.
func Run(driver lesson.Driver, userID, topic string) error {
	p := tea.NewProgram(newAppModel(driver, userID, topic))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
