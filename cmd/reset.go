package cmd

import (
	"fmt"

	"github.com/koundinyapidaparthy2/CADMV/internal/history"
	"github.com/koundinyapidaparthy2/CADMV/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the seen-question history",
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

		if err := history.New(st).Reset(); err != nil {
			return fmt.Errorf("reset history: %w", err)
		}
		fmt.Println("Seen-question history cleared.")
		return nil
	},
}
