package session

import "fmt"

// Config controls lesson shape and outcome.
type Config struct {
	// QuestionsPerLesson is how many answers complete a lesson.
	QuestionsPerLesson int

	// MinLessonScore is the success-rate percentage (0-100) at or
	// above which a completed lesson counts as passed.
	MinLessonScore float64
}

// DefaultConfig returns the recommended lesson defaults.
func DefaultConfig() Config {
	return Config{
		QuestionsPerLesson: 5,
		MinLessonScore:     80,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.QuestionsPerLesson <= 0 {
		return fmt.Errorf("questions per lesson must be positive, got %d", c.QuestionsPerLesson)
	}
	if c.MinLessonScore < 0 || c.MinLessonScore > 100 {
		return fmt.Errorf("min lesson score must be within [0,100], got %f", c.MinLessonScore)
	}
	return nil
}
