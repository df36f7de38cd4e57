package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpal/internal/explain"
	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/store"
)

var explainCmd = &cobra.Command{
	Use:   "explain <concept>",
	Short: "Explain a math concept",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		concept := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		providers, err := llm.NewProvidersFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		explanation, err := explain.New(providers.Fast).Explain(ctx, concept)
		if err != nil {
			return err
		}

		renderer := mathtex.NewRenderer(mathtex.NewTermTypesetter())
		fmt.Println(renderer.RenderText(explanation))
		return nil
	},
}
