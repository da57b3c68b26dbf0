package lesson

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/riskdrill/internal/controller"
)

// mockDriver scripts controller replies.
type mockDriver struct {
	resumeReply *controller.Reply
	startReply  *controller.Reply
	submitReply *controller.Reply
	startErr    error
	submitErr   error

	started   int
	submitted []string
	abandoned int
}

func (d *mockDriver) StartLesson(_ context.Context, _, _ string) (*controller.Reply, error) {
	d.started++
	return d.startReply, d.startErr
}

func (d *mockDriver) SubmitAnswer(_ context.Context, _, answer string) (*controller.Reply, error) {
	d.submitted = append(d.submitted, answer)
	return d.submitReply, d.submitErr
}

func (d *mockDriver) Continue(_ context.Context, _ string) (*controller.Reply, error) {
	return d.startReply, nil
}

func (d *mockDriver) Abandon(_ context.Context, _ string) (*controller.Reply, error) {
	d.abandoned++
	return &controller.Reply{Message: "Lesson abandoned."}, nil
}

func (d *mockDriver) Resume(_ context.Context, _ string) (*controller.Reply, error) {
	return d.resumeReply, nil
}

func questionReply(number int) *controller.Reply {
	return &controller.Reply{
		Message: "Question text goes here.",
		Question: &controller.Question{
			Text:           "Question text goes here.",
			Number:         number,
			Total:          5,
			Difficulty:     1,
			DifficultyName: "Beginner",
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

// begun returns a model past Init, showing its first question.
func begun(t *testing.T, d *mockDriver) *Model {
	t.Helper()
	m := New(d, "local", "rto-rpo")
	msg := runCmd(t, m.begin())
	m, _ = m.Update(msg)
	if m.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", m.phase)
	}
	return m
}

func TestBeginStartsFreshLesson(t *testing.T) {
	d := &mockDriver{startReply: questionReply(1)}
	m := begun(t, d)

	if d.started != 1 {
		t.Errorf("started = %d, want 1", d.started)
	}
	if m.question == nil || m.question.Number != 1 {
		t.Fatalf("question = %+v", m.question)
	}
	if m.Tier() != "Beginner" {
		t.Errorf("tier = %q", m.Tier())
	}
}

func TestBeginPrefersResume(t *testing.T) {
	d := &mockDriver{
		resumeReply: &controller.Reply{Message: "Resuming your lesson on rto-rpo."},
		startReply:  questionReply(3),
	}
	m := New(d, "local", "rto-rpo")
	msg := runCmd(t, m.begin())
	m, _ = m.Update(msg)

	if d.started != 0 {
		t.Error("a resumable lesson must not be restarted")
	}
	if !strings.Contains(m.message, "Resuming") {
		t.Errorf("message = %q, want the resume notice", m.message)
	}
	if m.question == nil || m.question.Number != 3 {
		t.Fatalf("question = %+v, want question 3", m.question)
	}
}

func TestBeginErrorShowsFailure(t *testing.T) {
	d := &mockDriver{startErr: errors.New("database locked")}
	m := New(d, "local", "rto-rpo")
	msg := runCmd(t, m.begin())
	m, _ = m.Update(msg)

	if m.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if !strings.Contains(m.View(80, 24), "database locked") {
		t.Error("view should show the failure")
	}
}

func TestEmptyAnswerIsNotSubmitted(t *testing.T) {
	d := &mockDriver{startReply: questionReply(1)}
	m := begun(t, d)

	m, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter on an empty input should do nothing")
	}
	if len(d.submitted) != 0 {
		t.Errorf("submitted = %v", d.submitted)
	}
	_ = m
}

func TestSubmitFlowAdvancesQuestion(t *testing.T) {
	d := &mockDriver{startReply: questionReply(1), submitReply: questionReply(2)}
	m := begun(t, d)

	for _, r := range "rto" {
		m, _ = m.Update(keyPress(r))
	}
	m, cmd := m.Update(specialKey(tea.KeyEnter))
	if !m.busy {
		t.Error("model should be busy while grading")
	}
	msg := runCmd(t, cmd)
	if d.submitted[0] != "rto" {
		t.Errorf("submitted = %q", d.submitted[0])
	}

	m, _ = m.Update(msg)
	if m.busy {
		t.Error("busy should clear on reply")
	}
	if m.question.Number != 2 {
		t.Errorf("question number = %d, want 2", m.question.Number)
	}
	if m.input.Value() != "" {
		t.Errorf("input should reset, got %q", m.input.Value())
	}
}

func TestSummaryEndsLesson(t *testing.T) {
	d := &mockDriver{
		startReply: questionReply(5),
		submitReply: &controller.Reply{
			Message: "Lesson complete: 4 of 5 correct (80%). You passed this lesson.",
		},
	}
	m := begun(t, d)

	for _, r := range "ok" {
		m, _ = m.Update(keyPress(r))
	}
	m, cmd := m.Update(specialKey(tea.KeyEnter))
	m, _ = m.Update(runCmd(t, cmd))

	if m.phase != phaseEnded {
		t.Fatalf("phase = %d, want ended", m.phase)
	}
	if !strings.Contains(m.View(80, 24), "Lesson complete") {
		t.Error("view should show the summary")
	}

	// Any key exits.
	_, cmd = m.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestEscConfirmsBeforeAbandoning(t *testing.T) {
	d := &mockDriver{startReply: questionReply(1)}
	m := begun(t, d)

	m, _ = m.Update(specialKey(tea.KeyEscape))
	if !m.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	if !strings.Contains(m.View(80, 24), "Abandon this lesson?") {
		t.Error("view should show the confirmation prompt")
	}

	// n keeps the lesson.
	m, _ = m.Update(keyPress('n'))
	if m.confirmQuit || d.abandoned != 0 {
		t.Fatal("n should cancel")
	}

	// y abandons.
	m, _ = m.Update(specialKey(tea.KeyEscape))
	m, cmd := m.Update(keyPress('y'))
	msg := runCmd(t, cmd)
	m, _ = m.Update(msg)

	if d.abandoned != 1 {
		t.Errorf("abandoned = %d, want 1", d.abandoned)
	}
	if m.phase != phaseEnded {
		t.Errorf("phase = %d, want ended", m.phase)
	}
	if !strings.Contains(m.message, "abandoned") {
		t.Errorf("message = %q", m.message)
	}
}

func TestTypingIgnoredWhileBusy(t *testing.T) {
	d := &mockDriver{startReply: questionReply(1), submitReply: questionReply(2)}
	m := begun(t, d)

	m, _ = m.Update(keyPress('a'))
	m, _ = m.Update(specialKey(tea.KeyEnter))

	m, _ = m.Update(keyPress('z'))
	if strings.Contains(m.input.Value(), "z") {
		t.Error("input must not accept keys while grading")
	}
}

func TestTerminalNoticeEndsScreen(t *testing.T) {
	// Empty corpus: a message-only reply with no question.
	d := &mockDriver{startReply: &controller.Reply{Message: "No study material is available for this topic yet."}}
	m := New(d, "local", "rto-rpo")
	msg := runCmd(t, m.begin())
	m, _ = m.Update(msg)

	if m.phase != phaseEnded {
		t.Fatalf("phase = %d, want ended", m.phase)
	}
	if !strings.Contains(m.View(80, 24), "No study material") {
		t.Error("view should show the notice")
	}
}
