package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/mathtex"
	solve "github.com/abhisek/mathpal/internal/solver"
	"github.com/abhisek/mathpal/internal/store"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem>",
	Short: "Solve a math problem without entering the TUI",
	Long:  "Solve a math problem and print the step-by-step solution. An image of the problem can be attached with --image; the problem text may then be empty.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		problem := strings.TrimSpace(strings.Join(args, " "))

		imagePath, _ := cmd.Flags().GetString("image")
		var image []byte
		if imagePath != "" {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			image = data
		}

		if problem == "" && image == nil {
			return fmt.Errorf("nothing to solve: give a problem or --image")
		}

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

		sv := solve.New(providers.Quality, st.EventRepo())
		result, err := sv.Solve(ctx, problem, image)
		if err != nil {
			return err
		}

		renderer := mathtex.NewRenderer(mathtex.NewTermTypesetter())

		fmt.Println(renderer.RenderText(result.Solution))
		fmt.Println()
		for i, step := range result.Steps {
			fmt.Printf("%d. %s\n", i+1, renderer.RenderText(step))
		}
		fmt.Println()
		fmt.Println("=>", renderer.RenderText(result.FinalAnswer))
		if len(result.RelatedFormulas) > 0 {
			fmt.Println()
			fmt.Println("Công thức liên quan:")
			for _, f := range result.RelatedFormulas {
				fmt.Println("  ", renderer.Render(f, false))
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringP("image", "i", "", "Path to a PNG image of the problem")
}
