package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpal/internal/app"
	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/quizgen"
	solve "github.com/abhisek/mathpal/internal/solver"
	"github.com/abhisek/mathpal/internal/store"
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

	eventRepo := st.EventRepo()
	opts := app.Options{
		Events:   eventRepo,
		Renderer: mathtex.NewRenderer(mathtex.NewTermTypesetter()),
	}

	providers, err := llm.NewProvidersFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Solving and quizzes will be unavailable.")
	} else {
		opts.Solver = solve.New(providers.Quality, eventRepo)
		opts.Generator = quizgen.New(providers.Fast)
	}

	return app.Run(opts)
}
