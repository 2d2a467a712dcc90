package quizgen

import (
	"fmt"
	"strings"

	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
)

// systemInstruction pins the examiner role for every generation request.
const systemInstruction = "You are a California DMV examiner. Ensure strict accuracy to the 2025 Handbook. " +
	"For sign questions, YOU MUST use the 'STABLE ASSET URLS' provided in the handbook context whenever possible. " +
	"Only use real Wikimedia Commons links. Do not hallucinate URLs."

// BuildPrompt composes the instruction string for the remote generator
// from the quiz configuration and the hashes of previously seen
// questions. Pure and deterministic: equal inputs produce byte-identical
// output. No network or storage access.
func BuildPrompt(cfg quiz.Config, seenHashes []string) string {
	var b strings.Builder

	b.WriteString("You are an expert CA DMV examiner. Generate a JSON quiz.\n\n")

	b.WriteString("PARAMETERS:\n")
	fmt.Fprintf(&b, "- Count: %d\n", cfg.QuestionCount)
	fmt.Fprintf(&b, "- Difficulty Setting: %s\n", difficultyInstruction(cfg.Difficulty))
	fmt.Fprintf(&b, "- Focus: %s\n", focusInstruction(cfg.Focus))
	fmt.Fprintf(&b, "- Style: %s\n\n", styleInstruction(cfg.Style))

	b.WriteString("UNIQUENESS:\n")
	fmt.Fprintf(&b, "AVOID questions related to these hashes: [%s].\n\n", strings.Join(seenHashes, ", "))

	b.WriteString(`IMAGE RELIABILITY:
- If a question is about a sign, ALWAYS provide a 'questionImageUrl'.
- Use the EXACT URLs from the SIGN LIBRARY provided in Section 4.
- If asking "Identify this sign", provide the URL in questionImageUrl and text answers.
- If asking "Which of these is the YIELD sign", provide text in options and matching URLs in optionImageUrls.

`)

	b.WriteString("JSON SCHEMA:\n")
	fmt.Fprintf(&b, `{
  "quizTitle": "CA DMV Practice Test",
  "totalQuestions": %d,
  "questions": [
    {
      "questionId": "u_1",
      "difficulty": "medium",
      "question": "What does this sign mean?",
      "options": ["Stop", "Yield", "No Entry", "Caution"],
      "correctAnswer": "Yield",
      "questionImageUrl": %q
    }
  ]
}
`, cfg.QuestionCount, SignURL("YIELD"))

	b.WriteString(HandbookHighlights())

	return b.String()
}

// difficultyInstruction renders the difficulty clause. A "mix" setting
// must never leak into per-question difficulty fields, so the clause
// forbids the literal value explicitly.
func difficultyInstruction(d quiz.Difficulty) string {
	if d == quiz.DifficultyMix {
		return `Vary the difficulty of questions between "easy", "medium", and "hard". ` +
			`IMPORTANT: The "difficulty" field in JSON must NOT be "mix", it must be one of the specific levels.`
	}
	return fmt.Sprintf("All questions should be %q difficulty.", string(d))
}

func focusInstruction(f quiz.Focus) string {
	switch f {
	case quiz.FocusNumeric:
		return `The quiz MUST be "Math Oriented". Every question must involve numeric values.`
	case quiz.FocusMinors:
		return `The quiz MUST focus on "Students Under 21".`
	case quiz.FocusDUI:
		return "The quiz MUST focus on Alcohol, Drugs, and DUI laws."
	case quiz.FocusSigns:
		return "The quiz MUST focus on Traffic Signs. Use the SIGN LIBRARY URLs for questionImageUrl or optionImageUrls. " +
			`For "Which sign means..." questions, provide 4 different URLs in optionImageUrls.`
	case quiz.FocusFines:
		return "The quiz MUST focus on Fines and Penalties."
	default:
		return "Generate a balanced mix of all handbook topics."
	}
}

func styleInstruction(s quiz.Style) string {
	switch s {
	case quiz.StyleScenario:
		return `All questions must be "Scenario-based".`
	case quiz.StyleStraightforward:
		return `All questions must be "Straightforward" factual questions.`
	default:
		return "Provide a mix of scenario-based and straightforward factual questions."
	}
}
