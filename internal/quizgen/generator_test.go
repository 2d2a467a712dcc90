package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/koundinyapidaparthy2/CADMV/internal/llm"
	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
)

const validQuizJSON = `{
	"quizTitle": "CA DMV Practice Test",
	"totalQuestions": 1,
	"questions": [
		{
			"questionId": "u_1",
			"difficulty": "medium",
			"question": "What does a triangular sign mean?",
			"options": ["Stop", "Yield", "One Way", "Merge"],
			"correctAnswer": "Yield"
		}
	]
}`

func TestGenerateQuiz_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuizJSON)})
	client := New(mock, DefaultConfig())

	data, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), []string{"abc"})
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	if data.QuizTitle != "CA DMV Practice Test" {
		t.Errorf("QuizTitle = %q", data.QuizTitle)
	}
	if len(data.Questions) != 1 || data.Questions[0].CorrectAnswer != "Yield" {
		t.Errorf("unexpected questions: %+v", data.Questions)
	}

	// The request must carry the schema and the system instruction.
	if len(mock.Calls) != 1 {
		t.Fatalf("CallCount = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "dmv-quiz" {
		t.Error("expected the dmv-quiz schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system instruction")
	}
}

func TestGenerateQuiz_NilProviderMeansNoCredentials(t *testing.T) {
	client := New(nil, DefaultConfig())

	_, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), nil)
	var missing *ErrCredentialsMissing
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want ErrCredentialsMissing", err)
	}
}

func TestGenerateQuiz_AuthErrorNormalized(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnauthenticated{Err: errors.New("401 key rejected")}})
	client := New(mock, DefaultConfig())

	_, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), nil)
	var auth *ErrAuthFailed
	if !errors.As(err, &auth) {
		t.Fatalf("err = %v, want ErrAuthFailed", err)
	}
	if err.Error() != AuthRemediation {
		t.Errorf("message = %q, want remediation text", err.Error())
	}
}

func TestGenerateQuiz_AuthMarkerInPlainError(t *testing.T) {
	// Some SDK paths surface auth failures as plain errors with marker
	// text rather than typed errors.
	tests := []string{
		"rpc failed: UNAUTHENTICATED",
		"server returned 401",
		"CREDENTIALS_MISSING from shim",
		"API keys are not supported by this endpoint",
	}
	for _, msg := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New(msg)})
		client := New(mock, DefaultConfig())

		_, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), nil)
		var auth *ErrAuthFailed
		if !errors.As(err, &auth) {
			t.Errorf("%q: err = %v, want ErrAuthFailed", msg, err)
		}
	}
}

func TestGenerateQuiz_OtherErrorsPassThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("model overloaded")})
	client := New(mock, DefaultConfig())

	_, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var auth *ErrAuthFailed
	if errors.As(err, &auth) {
		t.Error("non-auth error must not be normalized to ErrAuthFailed")
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("original message lost: %q", err.Error())
	}
}

func TestGenerateQuiz_InvalidShape(t *testing.T) {
	// The mock skips provider-side schema validation, so the client's
	// own parse must catch a payload of the wrong shape.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": "not an array"}`)})
	client := New(mock, DefaultConfig())

	_, err := client.GenerateQuiz(context.Background(), quiz.DefaultConfig(), nil)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestGenerateQuiz_EffortHintScaling(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	client := New(mock, DefaultConfig())

	small := quiz.DefaultConfig()
	small.QuestionCount = 10
	if _, err := client.GenerateQuiz(context.Background(), small, nil); err != nil {
		t.Fatal(err)
	}

	large := quiz.DefaultConfig()
	large.QuestionCount = 100
	if _, err := client.GenerateQuiz(context.Background(), large, nil); err != nil {
		t.Fatal(err)
	}

	if mock.Calls[0].ThinkingBudget != 0 {
		t.Errorf("small request ThinkingBudget = %d, want 0 (provider default)", mock.Calls[0].ThinkingBudget)
	}
	if mock.Calls[1].ThinkingBudget != DefaultConfig().LowEffortBudget {
		t.Errorf("large request ThinkingBudget = %d, want %d", mock.Calls[1].ThinkingBudget, DefaultConfig().LowEffortBudget)
	}
}
