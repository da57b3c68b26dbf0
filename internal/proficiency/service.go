// Package proficiency tracks a per-user, per-topic skill estimate as an
// integer tier moved by answer streaks.
package proficiency

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/riskdrill/internal/store"
)

// State is the proficiency estimate for one (user, topic) pair.
// ConsecutiveCorrect and ConsecutiveIncorrect are mutually exclusive:
// incrementing one resets the other.
type State struct {
	Topic                string
	Level                int
	ConsecutiveCorrect   int
	ConsecutiveIncorrect int
	QuestionsAnswered    int
	CorrectAnswers       int
	LastUpdated          time.Time
}

// UpdateResult reports the state after an update and whether the level
// moved.
type UpdateResult struct {
	State       State
	LevelChange int // -1, 0, or +1
}

// EventAppender records proficiency updates for audit. Satisfied by
// store.EventRepo.
type EventAppender interface {
	AppendProficiencyEvent(ctx context.Context, data store.ProficiencyEventData) error
}

type key struct {
	userID string
	topic  string
}

// Service owns all proficiency state. Updates are atomic per (user,
// topic) key; reads never mutate observable state beyond lazily
// materializing the default.
type Service struct {
	cfg    Config
	events EventAppender

	mu     sync.Mutex
	states map[key]*State

	now func() time.Time
}

// NewService creates a Service. events may be nil to skip the audit log.
func NewService(cfg Config, events EventAppender) *Service {
	return &Service{
		cfg:    cfg,
		events: events,
		states: make(map[key]*State),
		now:    time.Now,
	}
}

// Current returns the user's proficiency for the topic, creating the
// default state at the configured starting level on first contact.
func (s *Service) Current(userID, topic string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getLocked(userID, topic)
}

func (s *Service) getLocked(userID, topic string) *State {
	k := key{userID: userID, topic: topic}
	st, ok := s.states[k]
	if !ok {
		st = &State{Topic: topic, Level: s.cfg.StartingLevel}
		s.states[k] = st
	}
	return st
}

// Update applies one evaluated answer. A streak reaching the threshold
// moves the level by exactly one tier, bounded to [1, MaxLevel], and
// resets both counters; anything short of a streak moves counters only.
func (s *Service) Update(ctx context.Context, userID, topic string, passed bool) (UpdateResult, error) {
	s.mu.Lock()
	st := s.getLocked(userID, topic)

	before := st.Level
	st.QuestionsAnswered++
	if passed {
		st.CorrectAnswers++
		st.ConsecutiveCorrect++
		st.ConsecutiveIncorrect = 0
		if st.ConsecutiveCorrect >= s.cfg.StreakThreshold {
			if st.Level < s.cfg.MaxLevel {
				st.Level++
			}
			st.ConsecutiveCorrect = 0
			st.ConsecutiveIncorrect = 0
		}
	} else {
		st.ConsecutiveIncorrect++
		st.ConsecutiveCorrect = 0
		if st.ConsecutiveIncorrect >= s.cfg.StreakThreshold {
			if st.Level > 1 {
				st.Level--
			}
			st.ConsecutiveCorrect = 0
			st.ConsecutiveIncorrect = 0
		}
	}
	st.LastUpdated = s.now()

	result := UpdateResult{State: *st, LevelChange: st.Level - before}
	s.mu.Unlock()

	if s.events != nil {
		err := s.events.AppendProficiencyEvent(ctx, store.ProficiencyEventData{
			UserID:               userID,
			Topic:                topic,
			Passed:               passed,
			LevelBefore:          before,
			LevelAfter:           result.State.Level,
			ConsecutiveCorrect:   result.State.ConsecutiveCorrect,
			ConsecutiveIncorrect: result.State.ConsecutiveIncorrect,
		})
		if err != nil {
			return result, fmt.Errorf("record proficiency event: %w", err)
		}
	}

	return result, nil
}

// All returns the user's proficiency across every topic touched so far.
func (s *Service) All(userID string) map[string]State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]State)
	for k, st := range s.states {
		if k.userID == userID {
			out[k.topic] = *st
		}
	}
	return out
}

// SnapshotData exports the user's proficiency in the snapshot format.
func (s *Service) SnapshotData(userID string) map[string]store.TopicProficiencyData {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]store.TopicProficiencyData)
	for k, st := range s.states {
		if k.userID != userID {
			continue
		}
		out[k.topic] = store.TopicProficiencyData{
			Level:                st.Level,
			ConsecutiveCorrect:   st.ConsecutiveCorrect,
			ConsecutiveIncorrect: st.ConsecutiveIncorrect,
			QuestionsAnswered:    st.QuestionsAnswered,
			CorrectAnswers:       st.CorrectAnswers,
			UpdatedAt:            st.LastUpdated,
		}
	}
	return out
}

// Restore loads the user's proficiency from a snapshot, replacing any
// in-memory state for the topics it covers.
func (s *Service) Restore(userID string, data map[string]store.TopicProficiencyData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for topic, d := range data {
		level := d.Level
		if level < 1 {
			level = s.cfg.StartingLevel
		}
		if level > s.cfg.MaxLevel {
			level = s.cfg.MaxLevel
		}
		s.states[key{userID: userID, topic: topic}] = &State{
			Topic:                topic,
			Level:                level,
			ConsecutiveCorrect:   d.ConsecutiveCorrect,
			ConsecutiveIncorrect: d.ConsecutiveIncorrect,
			QuestionsAnswered:    d.QuestionsAnswered,
			CorrectAnswers:       d.CorrectAnswers,
			LastUpdated:          d.UpdatedAt,
		}
	}
}
