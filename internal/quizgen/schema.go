package quizgen

import "github.com/koundinyapidaparthy2/CADMV/internal/llm"

// QuizSchema declares the structured output shape for quiz generation
// responses. Optional image fields stay out of the required list; the
// rest must always be present.
var QuizSchema = &llm.Schema{
	Name:        "dmv-quiz",
	Description: "A multiple-choice California DMV practice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizTitle": map[string]any{
				"type":        "string",
				"description": "Display title for the quiz",
			},
			"totalQuestions": map[string]any{
				"type":        "integer",
				"description": "Declared question count, should equal the length of questions",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{
							"type":        "string",
							"description": "Unique within this quiz, e.g. u_1",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "Must equal exactly one element of options",
						},
						"questionImageUrl": map[string]any{
							"type": "string",
						},
						"optionImageUrls": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"questionId", "difficulty", "question", "options", "correctAnswer"},
				},
			},
		},
		"required": []any{"quizTitle", "totalQuestions", "questions"},
	},
}
