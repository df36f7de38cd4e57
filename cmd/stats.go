package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpal/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show solving and quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		solves, err := repo.CountSolves(ctx)
		if err != nil {
			return fmt.Errorf("count solves: %w", err)
		}
		fmt.Printf("Problems solved: %d\n", solves)

		stats, err := repo.QuizStatsByTopic(ctx)
		if err != nil {
			return fmt.Errorf("query quiz stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Println()
		fmt.Println("Quizzes by Topic")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-24s  %8s  %9s  %9s\n", "Topic", "Attempts", "Avg", "Best")
		fmt.Println(strings.Repeat("─", 64))

		for _, st := range stats {
			fmt.Printf("%-24s  %8d  %8.1f%%  %8s\n",
				st.Topic,
				st.Attempts,
				safePercent(st.AvgScore, st.Total),
				fmt.Sprintf("%d/%d", st.BestScore, st.Total),
			)
		}
		return nil
	},
}

// safePercent converts an average score over total questions to a
// percentage, guarding against empty quizzes.
func safePercent(avg float64, total int) float64 {
	if total == 0 {
		return 0
	}
	return avg / float64(total) * 100
}
