package proficiency

import (
	"context"
	"sync"
	"testing"

	"github.com/abhisek/riskdrill/internal/store"
)

type recordingAppender struct {
	mu     sync.Mutex
	events []store.ProficiencyEventData
}

func (r *recordingAppender) AppendProficiencyEvent(_ context.Context, data store.ProficiencyEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return nil
}

func newService() *Service {
	return NewService(DefaultConfig(), nil)
}

func update(t *testing.T, s *Service, user, topic string, passed bool) UpdateResult {
	t.Helper()
	result, err := s.Update(context.Background(), user, topic, passed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	return result
}

func TestCurrentCreatesDefaultState(t *testing.T) {
	s := newService()

	st := s.Current("u1", "impact-analysis")
	if st.Level != 1 {
		t.Errorf("level = %d, want starting level 1", st.Level)
	}
	if st.ConsecutiveCorrect != 0 || st.ConsecutiveIncorrect != 0 {
		t.Error("expected zero streak counters")
	}
}

func TestCurrentIsIdempotent(t *testing.T) {
	s := newService()

	first := s.Current("u1", "rto-rpo")
	for i := 0; i < 5; i++ {
		if got := s.Current("u1", "rto-rpo"); got != first {
			t.Fatalf("current changed without update: %+v vs %+v", got, first)
		}
	}
}

func TestStreakPromotesLevel(t *testing.T) {
	// User at level 3, streak threshold 2: two consecutive passes move
	// the level to 4 and reset both counters.
	s := newService()
	s.Restore("u1", map[string]store.TopicProficiencyData{
		"basics": {Level: 3},
	})

	r := update(t, s, "u1", "basics", true)
	if r.State.Level != 3 || r.State.ConsecutiveCorrect != 1 {
		t.Fatalf("after 1 pass: level=%d cc=%d, want 3/1", r.State.Level, r.State.ConsecutiveCorrect)
	}

	r = update(t, s, "u1", "basics", true)
	if r.State.Level != 4 {
		t.Errorf("level = %d, want 4", r.State.Level)
	}
	if r.LevelChange != 1 {
		t.Errorf("level change = %d, want +1", r.LevelChange)
	}
	if r.State.ConsecutiveCorrect != 0 || r.State.ConsecutiveIncorrect != 0 {
		t.Error("expected both counters reset after promotion")
	}

	// One failing answer afterwards: counter moves, level holds.
	r = update(t, s, "u1", "basics", false)
	if r.State.Level != 4 {
		t.Errorf("level = %d, want 4 after single fail", r.State.Level)
	}
	if r.State.ConsecutiveIncorrect != 1 {
		t.Errorf("consecutive incorrect = %d, want 1", r.State.ConsecutiveIncorrect)
	}
}

func TestStreakDemotesLevel(t *testing.T) {
	s := newService()
	s.Restore("u1", map[string]store.TopicProficiencyData{
		"basics": {Level: 3},
	})

	update(t, s, "u1", "basics", false)
	r := update(t, s, "u1", "basics", false)
	if r.State.Level != 2 {
		t.Errorf("level = %d, want 2", r.State.Level)
	}
	if r.LevelChange != -1 {
		t.Errorf("level change = %d, want -1", r.LevelChange)
	}
	if r.State.ConsecutiveCorrect != 0 || r.State.ConsecutiveIncorrect != 0 {
		t.Error("expected both counters reset after demotion")
	}
}

func TestCountersAreMutuallyExclusive(t *testing.T) {
	s := newService()

	update(t, s, "u1", "basics", true)
	r := update(t, s, "u1", "basics", false)
	if r.State.ConsecutiveCorrect != 0 {
		t.Errorf("consecutive correct = %d, want 0 after a fail", r.State.ConsecutiveCorrect)
	}
	if r.State.ConsecutiveIncorrect != 1 {
		t.Errorf("consecutive incorrect = %d, want 1", r.State.ConsecutiveIncorrect)
	}
}

func TestLevelBoundedForAnySequence(t *testing.T) {
	s := newService()

	// A long adversarial mix of passes and fails: the level never
	// moves more than one tier per update and never leaves [1, 5].
	sequence := []bool{true, true, true, true, false, false, false, false, false, false, true, false, true, true, true, true, true, true, true, true}
	prev := s.Current("u1", "basics").Level
	for i, passed := range sequence {
		r := update(t, s, "u1", "basics", passed)
		if diff := r.State.Level - prev; diff > 1 || diff < -1 {
			t.Fatalf("step %d: level jumped by %d", i, diff)
		}
		if r.State.Level < 1 || r.State.Level > 5 {
			t.Fatalf("step %d: level %d out of [1,5]", i, r.State.Level)
		}
		prev = r.State.Level
	}
}

func TestLevelCappedAtMax(t *testing.T) {
	s := newService()
	s.Restore("u1", map[string]store.TopicProficiencyData{
		"basics": {Level: 5},
	})

	update(t, s, "u1", "basics", true)
	r := update(t, s, "u1", "basics", true)
	if r.State.Level != 5 {
		t.Errorf("level = %d, want capped at 5", r.State.Level)
	}
	if r.State.ConsecutiveCorrect != 0 {
		t.Error("expected counters reset even when capped")
	}
}

func TestLevelFlooredAtOne(t *testing.T) {
	s := newService()

	update(t, s, "u1", "basics", false)
	r := update(t, s, "u1", "basics", false)
	if r.State.Level != 1 {
		t.Errorf("level = %d, want floored at 1", r.State.Level)
	}
}

func TestTopicsAreIndependent(t *testing.T) {
	s := newService()

	update(t, s, "u1", "rto-rpo", true)
	update(t, s, "u1", "rto-rpo", true)

	if lvl := s.Current("u1", "rto-rpo").Level; lvl != 2 {
		t.Errorf("rto-rpo level = %d, want 2", lvl)
	}
	if lvl := s.Current("u1", "impact-analysis").Level; lvl != 1 {
		t.Errorf("impact-analysis level = %d, want untouched 1", lvl)
	}
}

func TestUsersAreIndependent(t *testing.T) {
	s := newService()

	update(t, s, "u1", "basics", true)
	update(t, s, "u1", "basics", true)

	if lvl := s.Current("u2", "basics").Level; lvl != 1 {
		t.Errorf("u2 level = %d, want untouched 1", lvl)
	}
}

func TestUpdateEmitsAuditEvent(t *testing.T) {
	rec := &recordingAppender{}
	s := NewService(DefaultConfig(), rec)

	update(t, s, "u1", "basics", true)
	update(t, s, "u1", "basics", true)

	if len(rec.events) != 2 {
		t.Fatalf("events = %d, want 2", len(rec.events))
	}
	last := rec.events[1]
	if last.LevelBefore != 1 || last.LevelAfter != 2 {
		t.Errorf("level transition = %d->%d, want 1->2", last.LevelBefore, last.LevelAfter)
	}
	if !last.Passed {
		t.Error("expected passed=true")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newService()
	update(t, s, "u1", "basics", true)
	update(t, s, "u1", "rto-rpo", false)

	data := s.SnapshotData("u1")
	if len(data) != 2 {
		t.Fatalf("topics = %d, want 2", len(data))
	}

	restored := newService()
	restored.Restore("u1", data)

	for topic := range data {
		if got, want := restored.Current("u1", topic), s.Current("u1", topic); got != want {
			t.Errorf("topic %s: restored %+v, want %+v", topic, got, want)
		}
	}
}

func TestConcurrentUpdatesStayAtomic(t *testing.T) {
	s := newService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(context.Background(), "u1", "basics", true)
		}()
	}
	wg.Wait()

	st := s.Current("u1", "basics")
	if st.QuestionsAnswered != 50 {
		t.Errorf("questions answered = %d, want 50 (lost updates)", st.QuestionsAnswered)
	}
	if st.Level < 1 || st.Level > 5 {
		t.Errorf("level %d out of range", st.Level)
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Beginner"},
		{2, "Basic"},
		{3, "Advanced"},
		{4, "Expert"},
		{5, "Master"},
		{0, "Unknown"},
		{6, "Unknown"},
	}
	for _, tt := range tests {
		if got := LevelName(tt.level); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
