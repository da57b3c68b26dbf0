// Package lesson is the interactive lesson screen: it drives the
// session controller and renders questions, feedback, and the final
// summary.
package lesson

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskdrill/internal/controller"
	"github.com/abhisek/riskdrill/internal/ui/components"
	"github.com/abhisek/riskdrill/internal/ui/layout"
)

// Driver is the slice of the session controller the screen needs.
// Satisfied by *controller.Controller.
type Driver interface {
	StartLesson(ctx context.Context, userID, topic string) (*controller.Reply, error)
	SubmitAnswer(ctx context.Context, userID, answer string) (*controller.Reply, error)
	Continue(ctx context.Context, userID string) (*controller.Reply, error)
	Abandon(ctx context.Context, userID string) (*controller.Reply, error)
	Resume(ctx context.Context, userID string) (*controller.Reply, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseEnded
)

// Model is the lesson screen state.
type Model struct {
	driver Driver
	userID string
	topic  string

	input       components.TextInput
	question    *controller.Question
	message     string
	errMsg      string
	phase       phase
	confirmQuit bool
	busy        bool
}

// New creates the lesson screen for one user and topic.
func New(driver Driver, userID, topic string) *Model {
	return &Model{
		driver: driver,
		userID: userID,
		topic:  topic,
		input:  components.NewTextInput("Type your answer...", 500),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.begin(), m.input.Init())
}

// Topic returns the lesson topic for the header.
func (m *Model) Topic() string {
	return m.topic
}

// Tier returns the current question's tier name for the header.
func (m *Model) Tier() string {
	if m.question == nil {
		return ""
	}
	return m.question.DifficultyName
}

// KeyHints returns the footer hints for the current phase.
func (m *Model) KeyHints() []layout.KeyHint {
	if m.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch m.phase {
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseEnded:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return m.handleReply(msg)
	case abandonedMsg:
		m.busy = false
		m.confirmQuit = false
		m.phase = phaseEnded
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.message = msg.reply.Message
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseAnswering && !m.confirmQuit && !m.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleReply(msg replyMsg) (*Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.phase = phaseEnded
		return m, nil
	}

	m.message = msg.reply.Message
	switch {
	case msg.reply.Question != nil:
		m.question = msg.reply.Question
		m.phase = phaseAnswering
		m.input = components.NewTextInput("Type your answer...", 500)
		return m, m.input.Init()
	default:
		// A summary or a terminal notice (empty corpus, no lesson).
		m.question = nil
		m.phase = phaseEnded
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	key := msg.String()

	if m.confirmQuit {
		switch key {
		case "y", "Y":
			m.busy = true
			return m, m.abandon()
		case "n", "N", "esc":
			m.confirmQuit = false
		}
		return m, nil
	}

	switch m.phase {
	case phaseEnded:
		return m, tea.Quit
	case phaseAnswering:
		if m.busy {
			return m, nil
		}
		switch key {
		case "esc":
			m.confirmQuit = true
			return m, nil
		case "enter":
			answer := m.input.Value()
			if answer == "" {
				return m, nil
			}
			m.busy = true
			return m, m.submit(answer)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// begin resumes a saved lesson if one exists, otherwise starts fresh.
func (m *Model) begin() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		resumed, err := m.driver.Resume(ctx, m.userID)
		if err != nil {
			return replyMsg{err: err}
		}
		if resumed != nil {
			next, err := m.driver.Continue(ctx, m.userID)
			if err != nil {
				return replyMsg{err: err}
			}
			merged := *next
			merged.Message = resumed.Message + "\n\n" + next.Message
			return replyMsg{reply: &merged}
		}

		reply, err := m.driver.StartLesson(ctx, m.userID, m.topic)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) submit(answer string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.driver.SubmitAnswer(context.Background(), m.userID, answer)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) abandon() tea.Cmd {
	return func() tea.Msg {
		reply, err := m.driver.Abandon(context.Background(), m.userID)
		return abandonedMsg{reply: reply, err: err}
	}
}
