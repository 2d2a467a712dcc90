package quizgen

// Config holds generation tuning for the quiz client.
type Config struct {
	// MaxTokens bounds the response size. Large quizzes need room.
	MaxTokens int

	// Temperature controls randomness. Zero keeps the provider default.
	Temperature float64

	// LargeCountThreshold is the question count at or above which the
	// effort hint is scaled down: big requests trade reasoning depth
	// for latency.
	LargeCountThreshold int

	// LowEffortBudget is the thinking-token budget applied to large
	// requests. Zero disables the hint entirely, leaving the model's
	// default behavior untouched (required in some deployment
	// environments where reasoning controls conflict).
	LowEffortBudget int
}

// DefaultConfig returns the production generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           12000,
		LargeCountThreshold: 50,
		LowEffortBudget:     1024,
	}
}

// effortBudget returns the thinking budget for a request of the given
// question count: zero (provider default) for ordinary requests, the
// scaled-down budget for large ones.
func (c Config) effortBudget(questionCount int) int {
	if c.LowEffortBudget > 0 && questionCount >= c.LargeCountThreshold {
		return c.LowEffortBudget
	}
	return 0
}
