package cmd

import (
	"fmt"

	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show how many unique questions you have seen",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		count := history.New(st).SeenCount()
		fmt.Printf("Seen questions: %d (cap %d)\n", count, history.MaxEntries)
		return nil
	},
}
