package quiz

// Difficulty is the requested difficulty level for a quiz.
// Individual questions always carry a concrete level, never "mix".
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMix    Difficulty = "mix"
)

// Style is the requested question style.
type Style string

const (
	StyleScenario        Style = "scenario"
	StyleStraightforward Style = "straightforward"
	StyleMixed           Style = "mixed"
)

// Focus selects the handbook topic area for a quiz.
type Focus string

const (
	FocusMix     Focus = "mix"
	FocusNumeric Focus = "numeric" // math oriented: speeds, distances, limits
	FocusMinors  Focus = "minors"  // drivers under 21
	FocusDUI     Focus = "dui"     // alcohol and drug laws
	FocusSigns   Focus = "signs"   // signs and signals
	FocusFines   Focus = "fines"   // penalties and fines
)

// CountChoices are the question counts offered by the welcome screen.
// The generator accepts any positive count; these are just the presets.
var CountChoices = []int{5, 10, 25, 50, 75, 100}

// Config holds the four user-chosen parameters that shape a generation
// request. Immutable once submitted by the welcome screen.
type Config struct {
	Difficulty    Difficulty
	Style         Style
	Focus         Focus
	QuestionCount int
}

// DefaultConfig mirrors the welcome screen's initial selection.
func DefaultConfig() Config {
	return Config{
		Difficulty:    DifficultyMix,
		Style:         StyleMixed,
		Focus:         FocusMix,
		QuestionCount: 25,
	}
}

// Question is a single generated exam question. QuestionID is unique
// within one QuizData value, not across sessions.
type Question struct {
	QuestionID string   `json:"questionId"`
	Difficulty string   `json:"difficulty"` // "easy", "medium" or "hard"
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	// CorrectAnswer should equal exactly one element of Options. The
	// generator is expected but not guaranteed to uphold this.
	CorrectAnswer    string   `json:"correctAnswer"`
	QuestionImageURL string   `json:"questionImageUrl,omitempty"`
	// OptionImageURLs, when present, aligns positionally with Options.
	OptionImageURLs []string `json:"optionImageUrls,omitempty"`
}

// QuizData is one generated quiz. Question order is the presentation
// order and must be stable for navigation.
type QuizData struct {
	QuizTitle      string     `json:"quizTitle"`
	TotalQuestions int        `json:"totalQuestions"`
	Questions      []Question `json:"questions"`
}

// Answers maps a questionId to the single selected option string.
// Absence of an entry means unanswered. Once recorded, an entry is
// never overwritten: the first answer is final.
type Answers map[string]string

// QuestionByID returns the first question with the given ID in
// presentation order. When the generator emits duplicate IDs, the first
// occurrence is the one that owns the answer-map entry and is scored.
func (d *QuizData) QuestionByID(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.QuestionID == id {
			return q, true
		}
	}
	return Question{}, false
}
