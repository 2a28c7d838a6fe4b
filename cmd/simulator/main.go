package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dom/prodle/internal/repository/memory"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	cobra.CheckErr(newCmd().Execute())
}

func newCmd() *cobra.Command {
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	cmd := &cobra.Command{
		Use:           "simulator",
		Short:         "Development tool that plays the daily puzzle against a running server",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", apiURL, "server base URL (env: API_URL)")

	cmd.AddCommand(newSolveCmd(&apiURL), newRerollCmd(&apiURL), newDailyCmd(&apiURL))
	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}

func newSolveCmd(apiURL *string) *cobra.Command {
	var (
		playersFile    string
		ratioTolerance float64
		maxGuesses     int
		reroll         bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Guess until the daily player is found, narrowing candidates from each answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			client := NewAPIClient(*apiURL)

			players, err := memory.LoadPlayers(playersFile)
			if err != nil {
				return err
			}

			if reroll {
				res, err := client.Reroll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Rerolled (server says: %s)\n", res.Message)
			}

			solver, err := NewSolver(players, ratioTolerance, maxGuesses)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "=== Solving with %d candidates ===\n", solver.Remaining())
			start := time.Now()

			steps, err := solver.Solve(ctx, client, func(s Step) {
				status := "no"
				if s.Correct {
					status = "YES"
				}
				fmt.Fprintf(out, "  %-20s correct=%-3s candidates left=%d\n", s.Username, status, s.Remaining)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Solved in %d guesses (%s)\n", len(steps), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&playersFile, "players-file", "data/players.json", "roster the server was started with")
	fs.Float64Var(&ratioTolerance, "ratio-tolerance", 0, "must match the server's --ratio-tolerance")
	fs.IntVar(&maxGuesses, "max-guesses", 50, "give up after this many guesses")
	fs.BoolVar(&reroll, "reroll", false, "reroll the daily player first")

	return cmd
}

func newRerollCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reroll",
		Short: "Pick a new random daily player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := NewAPIClient(*apiURL).Reroll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Message, res.NewPlayer)
			return nil
		},
	}
}

func newDailyCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show the current puzzle date and time until reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := NewAPIClient(*apiURL).Daily(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "date=%s players=%d overridden=%t resets in %s\n",
				info.Date, info.Players, info.Overridden, time.Duration(info.SecondsUntilReset)*time.Second)
			return nil
		},
	}
}
