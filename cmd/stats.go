package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axon-labs/axon/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning and tutor activity totals",
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

		counts, err := st.EventRepo().Counts(context.Background())
		if err != nil {
			return fmt.Errorf("query counts: %w", err)
		}

		accuracy := 0.0
		if counts.Answers > 0 {
			accuracy = float64(counts.CorrectAnswers) / float64(counts.Answers) * 100
		}
		hitRate := 0.0
		if counts.TutorResponses > 0 {
			hitRate = float64(counts.CacheHits) / float64(counts.TutorResponses) * 100
		}

		fmt.Printf("%-22s %d\n", "Answers submitted:", counts.Answers)
		fmt.Printf("%-22s %d (%.1f%%)\n", "Correct answers:", counts.CorrectAnswers, accuracy)
		fmt.Printf("%-22s %d\n", "Tutor responses:", counts.TutorResponses)
		fmt.Printf("%-22s %d (%.1f%%)\n", "Cache hits:", counts.CacheHits, hitRate)
		fmt.Printf("%-22s %d\n", "LLM requests:", counts.LLMRequests)
		return nil
	},
}
