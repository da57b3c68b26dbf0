package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskdrill/internal/ui/components"
	"github.com/abhisek/riskdrill/internal/ui/theme"
)

// View renders the screen content (excluding header/footer).
func (m *Model) View(width, height int) string {
	if m.errMsg != "" {
		return renderError(width, m.errMsg)
	}
	if m.confirmQuit {
		return renderQuitConfirm(width)
	}
	switch m.phase {
	case phaseLoading:
		return renderCentered(width, "Preparing your lesson...")
	case phaseEnded:
		return m.renderEnded(width)
	default:
		return m.renderQuestion(width)
	}
}

func (m *Model) renderQuestion(width int) string {
	if m.busy {
		return renderCentered(width, "Grading your answer...")
	}
	if m.question == nil {
		return renderCentered(width, "Generating question...")
	}

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", m.question.Number, m.question.Total),
		float64(m.question.Number-1)/float64(m.question.Total),
		false,
		width-8,
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Render(m.message)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(body))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		PaddingLeft(4).
		Render("Answer: " + m.input.View())
	b.WriteString(answerLine)

	return b.String()
}

func (m *Model) renderEnded(width int) string {
	body := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Render(m.message)

	hint := theme.Hint.Render("\n\nPress any key to exit.")
	return lipgloss.NewStyle().PaddingLeft(4).PaddingTop(1).Render(body + hint)
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(2).
		Foreground(theme.Text).
		Render("Abandon this lesson?\n\nYour proficiency will not change. (y/n)")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(2).
		Render(theme.Incorrect.Render("Something went wrong:\n\n" + msg))
}

func renderCentered(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		PaddingTop(2).
		Foreground(theme.TextDim).
		Render(msg)
}
