package quiz

// DemoQuiz returns the fixed built-in quiz used when the remote
// generator is unavailable, so the flow remains usable offline.
func DemoQuiz() *QuizData {
	return &QuizData{
		QuizTitle:      "CA DMV Practice Test",
		TotalQuestions: 1,
		Questions: []Question{
			{
				QuestionID:       "demo1",
				Difficulty:       "medium",
				Question:         "Which of these signs means Yield?",
				Options:          []string{"Triangle", "Octagon", "Diamond", "Rectangle"},
				CorrectAnswer:    "Triangle",
				QuestionImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d8/Yield_sign.svg/1200px-Yield_sign.svg.png",
			},
		},
	}
}
