package proficiency

// Config controls the adaptation policy.
type Config struct {
	// MaxLevel is the highest difficulty tier.
	MaxLevel int

	// StartingLevel is the tier assigned on first contact with a topic.
	StartingLevel int

	// StreakThreshold is how many consecutive passes (or fails) move
	// the level up (or down) by one tier.
	StreakThreshold int
}

// DefaultConfig returns the recommended adaptation defaults.
func DefaultConfig() Config {
	return Config{
		MaxLevel:        5,
		StartingLevel:   1,
		StreakThreshold: 2,
	}
}

// levelNames maps tiers to learner-facing labels.
var levelNames = [...]string{"Beginner", "Basic", "Advanced", "Expert", "Master"}

// LevelName returns the learner-facing label for a tier.
func LevelName(level int) string {
	if level < 1 || level > len(levelNames) {
		return "Unknown"
	}
	return levelNames[level-1]
}
