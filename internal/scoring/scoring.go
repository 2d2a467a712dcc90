// Package scoring derives running and final statistics from the answer
// map. Everything here is pure and O(number of questions), cheap enough
// to recompute on every answer.
package scoring

import (
	"math"

	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
)

// PassingScore is the fixed pass/fail boundary, mirroring the real
// exam's passing standard.
const PassingScore = 83

// Result holds the final statistics for a completed quiz.
type Result struct {
	Correct    int
	Incorrect  int
	Unanswered int
	// Score is round(100 * correct / totalQuestions).
	Score int
	// Passed is true when Score >= PassingScore.
	Passed bool
}

// Final computes the end-of-quiz result. Unanswered counts every
// question without a recorded answer; scoring is against the declared
// total, so the generator under-delivering questions still penalizes.
func Final(data *quiz.QuizData, answers quiz.Answers) Result {
	correct, incorrect := tally(data, answers)

	total := data.TotalQuestions
	if total <= 0 {
		total = len(data.Questions)
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}

	return Result{
		Correct:    correct,
		Incorrect:  incorrect,
		Unanswered: total - correct - incorrect,
		Score:      score,
		Passed:     score >= PassingScore,
	}
}

// LivePercent is the accuracy-so-far shown during play:
// round(100 * correct / answered). With nothing answered yet it is 100:
// the unattempted state reads as perfect, never a divide by zero.
func LivePercent(data *quiz.QuizData, answers quiz.Answers) int {
	correct, incorrect := tally(data, answers)
	answered := correct + incorrect
	if answered == 0 {
		return 100
	}
	return int(math.Round(100 * float64(correct) / float64(answered)))
}

// tally counts correct and incorrect recorded answers. Questions whose
// ID never appears in the answer map contribute to neither. Duplicate
// question IDs are scored once, against the first occurrence.
func tally(data *quiz.QuizData, answers quiz.Answers) (correct, incorrect int) {
	counted := make(map[string]bool, len(answers))
	for _, q := range data.Questions {
		if counted[q.QuestionID] {
			continue
		}
		counted[q.QuestionID] = true
		answer, ok := answers[q.QuestionID]
		if !ok {
			continue
		}
		if answer == q.CorrectAnswer {
			correct++
		} else {
			incorrect++
		}
	}
	return correct, incorrect
}
