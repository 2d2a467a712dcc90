package screens

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/quiz"
	"github.com/koundinyapidaparthy2/CADMV/internal/quizgen"
	"github.com/koundinyapidaparthy2/CADMV/internal/router"
	"github.com/koundinyapidaparthy2/CADMV/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps() Deps {
	return Deps{
		Session: session.New(),
		Client:  quizgen.New(nil, quizgen.DefaultConfig()),
		History: history.New(history.NewMapKV()),
	}
}

func testQuiz() *quiz.QuizData {
	return &quiz.QuizData{
		QuizTitle:      "Practice Exam",
		TotalQuestions: 2,
		Questions: []quiz.Question{
			{
				QuestionID:    "q1",
				Difficulty:    "easy",
				Question:      "What does a red octagon mean?",
				Options:       []string{"Stop", "Yield", "Merge"},
				CorrectAnswer: "Stop",
			},
			{
				QuestionID:    "q2",
				Difficulty:    "hard",
				Question:      "What is the BAC limit for drivers over 21?",
				Options:       []string{"0.01%", "0.08%", "0.10%"},
				CorrectAnswer: "0.08%",
			},
		},
	}
}

// runCmd executes a command and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestWelcome_DefaultConfig(t *testing.T) {
	w := NewWelcome(testDeps())
	cfg := w.config()
	if cfg != quiz.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestWelcome_PickerChangesConfig(t *testing.T) {
	w := NewWelcome(testDeps())

	// First row is the difficulty picker; cycle right once: mix → easy.
	w.Update(specialKey(tea.KeyRight))

	if got := w.config().Difficulty; got != quiz.DifficultyEasy {
		t.Errorf("Difficulty = %q, want easy", got)
	}
}

func TestWelcome_StartEntersLoading(t *testing.T) {
	deps := testDeps()
	w := NewWelcome(deps)

	// Move down to the START EXAM row and press enter.
	for i := 0; i < rowStart; i++ {
		w.Update(specialKey(tea.KeyDown))
	}
	_, cmd := w.Update(specialKey(tea.KeyEnter))

	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*LoadingScreen); !ok {
		t.Fatalf("expected LoadingScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateLoading {
		t.Errorf("session state = %v, want loading", deps.Session.State)
	}
}

func TestWelcome_DemoEntersExam(t *testing.T) {
	deps := testDeps()
	w := NewWelcome(deps)

	for i := 0; i < rowDemo; i++ {
		w.Update(specialKey(tea.KeyDown))
	}
	_, cmd := w.Update(specialKey(tea.KeyEnter))

	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*ExamScreen); !ok {
		t.Fatalf("expected ExamScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateQuiz {
		t.Errorf("session state = %v, want quiz", deps.Session.State)
	}
	if deps.Session.Quiz == nil || deps.Session.Quiz.Questions[0].QuestionID != "demo1" {
		t.Error("expected the demo quiz loaded")
	}
}

func TestWelcome_OfflineShowsKeyRow(t *testing.T) {
	w := NewWelcome(testDeps())
	if !w.offline() {
		t.Fatal("nil-provider client should read as offline")
	}

	view := w.View(100, 40)
	if !strings.Contains(view, "SELECT API KEY") {
		t.Error("expected the key picker row when offline")
	}
	if !strings.Contains(view, "No API key configured") {
		t.Error("expected the offline warning")
	}
}

func TestLoading_SuccessMovesToExam(t *testing.T) {
	deps := testDeps()
	cfg := quiz.DefaultConfig()
	gen := deps.Session.StartQuiz(cfg)
	l := NewLoading(deps, cfg, gen)

	_, cmd := l.Update(generationDoneMsg{gen: gen, data: testQuiz(), err: nil})

	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*ExamScreen); !ok {
		t.Fatalf("expected ExamScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateQuiz {
		t.Errorf("session state = %v, want quiz", deps.Session.State)
	}
}

func TestLoading_FailureMovesToFailure(t *testing.T) {
	deps := testDeps()
	cfg := quiz.DefaultConfig()
	gen := deps.Session.StartQuiz(cfg)
	l := NewLoading(deps, cfg, gen)

	_, cmd := l.Update(generationDoneMsg{gen: gen, err: errTest("model overloaded")})

	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*FailureScreen); !ok {
		t.Fatalf("expected FailureScreen, got %T", rep.Screen)
	}
	if deps.Session.ErrMsg != "model overloaded" {
		t.Errorf("ErrMsg = %q", deps.Session.ErrMsg)
	}
}

func TestLoading_StaleResultIgnored(t *testing.T) {
	deps := testDeps()
	cfg := quiz.DefaultConfig()
	gen := deps.Session.StartQuiz(cfg)
	l := NewLoading(deps, cfg, gen)

	// User bails out to the demo quiz before the response lands.
	_, cmd := l.Update(keyPress('d'))
	runCmd(t, cmd)

	_, cmd = l.Update(generationDoneMsg{gen: gen, data: testQuiz(), err: nil})
	if cmd != nil {
		t.Error("stale generation result must not trigger navigation")
	}
	if deps.Session.Quiz.Questions[0].QuestionID != "demo1" {
		t.Error("demo quiz must survive the stale result")
	}
}

func TestExam_AnswerRecordsAndLocks(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, testQuiz(), nil)
	e := NewExam(deps)

	// Pick the first option of question one.
	e.Update(specialKey(tea.KeyEnter))
	if got := deps.Session.Answers["q1"]; got != "Stop" {
		t.Fatalf("Answers[q1] = %q, want Stop", got)
	}

	// Further input on the locked question changes nothing.
	e.Update(specialKey(tea.KeyDown))
	e.Update(specialKey(tea.KeyEnter))
	if got := deps.Session.Answers["q1"]; got != "Stop" {
		t.Errorf("Answers[q1] = %q after relock attempt, want Stop", got)
	}
}

func TestExam_NavigationPreservesAnswers(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, testQuiz(), nil)
	e := NewExam(deps)

	e.Update(specialKey(tea.KeyEnter)) // answer q1
	e.Update(specialKey(tea.KeyRight)) // to q2
	e.Update(specialKey(tea.KeyLeft))  // back to q1

	if !e.options.Locked() {
		t.Error("returning to an answered question must show it locked")
	}
}

func TestExam_FinishMovesToResults(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, testQuiz(), nil)
	e := NewExam(deps)

	_, cmd := e.Update(keyPress('f'))
	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*ResultsScreen); !ok {
		t.Fatalf("expected ResultsScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateResults {
		t.Errorf("session state = %v, want results", deps.Session.State)
	}
}

func TestResults_RecordsSeenQuestions(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, testQuiz(), nil)
	deps.Session.CompleteQuiz(quiz.Answers{"q1": "Stop"})

	NewResults(deps, time.Minute)

	if got := deps.History.SeenCount(); got != 2 {
		t.Errorf("SeenCount = %d, want 2", got)
	}
}

func TestResults_EnterStartsFreshSetup(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, testQuiz(), nil)
	deps.Session.CompleteQuiz(nil)
	r := NewResults(deps, time.Minute)

	_, cmd := r.Update(specialKey(tea.KeyEnter))
	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*WelcomeScreen); !ok {
		t.Fatalf("expected WelcomeScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateWelcome {
		t.Errorf("session state = %v, want welcome", deps.Session.State)
	}
}

func TestFailure_ShowsMessageAndRecovers(t *testing.T) {
	deps := testDeps()
	gen := deps.Session.StartQuiz(quiz.DefaultConfig())
	deps.Session.FinishGeneration(gen, nil, errTest("something broke"))
	f := NewFailure(deps)

	view := f.View(100, 40)
	if !strings.Contains(view, "something broke") {
		t.Error("expected the error message in the view")
	}

	// TRY AGAIN re-enters loading with the previous configuration.
	_, cmd := f.Update(specialKey(tea.KeyEnter))
	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*LoadingScreen); !ok {
		t.Fatalf("expected LoadingScreen, got %T", rep.Screen)
	}
	if deps.Session.State != session.StateLoading {
		t.Errorf("session state = %v, want loading", deps.Session.State)
	}
}

// errTest is a trivial error for exercising failure paths.
type errTest string

func (e errTest) Error() string { return string(e) }
