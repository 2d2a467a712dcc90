package cmd

import (
	"fmt"
	"os"

	"github.com/koundinyapidaparthy2/CADMV/internal/app"
	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/hostbridge"
	"github.com/koundinyapidaparthy2/CADMV/internal/llm"
	"github.com/koundinyapidaparthy2/CADMV/internal/quizgen"
	"github.com/koundinyapidaparthy2/CADMV/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Exam generation will be unavailable; demo mode still works.")
		provider = nil
	}

	opts := app.Options{
		Client:  quizgen.New(provider, quizgen.DefaultConfig()),
		History: history.New(st),
		Keys: hostbridge.EnvSelector{Probe: func() string {
			return llm.CleanAPIKey(os.Getenv("GEMINI_API_KEY"))
		}},
	}

	return app.Run(opts)
}
