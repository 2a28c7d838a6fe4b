package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/domain"
	fxmodules "github.com/dom/prodle/internal/fx"
	"github.com/dom/prodle/internal/logger"
	"github.com/dom/prodle/internal/repository"
	"github.com/dom/prodle/internal/repository/memory"
	"github.com/dom/prodle/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "prodle",
		Short:         "Daily guessing game over a roster of pro League of Legends players.",
		Args:          cobra.NoArgs,
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.BindEnv(cmd.Flags(), logger.New(cfg.LogLevel, cfg.Environment))
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}

	config.RegisterFlags(cmd.PersistentFlags(), cfg)

	cmd.AddCommand(newCheckCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("prodle v{{.Version}}\n")

	return cmd
}

func serve(cfg *config.Config) error {
	opts := []fx.Option{
		fx.Supply(cfg),
		fxmodules.Module,
		fx.Invoke(func(*http.Server) {}),
	}
	if cfg.IsProduction() {
		opts = append(opts, fx.NopLogger)
	}

	app := fx.New(opts...)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate the data files, then print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cfg.LogLevel, cfg.Environment)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			repos, err := memory.Load(ctx, cfg.PlayersFile, cfg.TeamImagesFile, log)
			if err != nil {
				return fmt.Errorf("data check failed: %w", err)
			}

			return printSummary(ctx, cmd.OutOrStdout(), repos, cfg, reveal, log)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print today's answer")

	return cmd
}

// printSummary reports roster counts and the data gaps the game tolerates
func printSummary(ctx context.Context, out io.Writer, repos *repository.Repositories, cfg *config.Config, reveal bool, log zerolog.Logger) error {
	players, err := repos.Player.GetAll(ctx)
	if err != nil {
		return err
	}

	var noLogo, noAge, unknownContinent, noChampion, offListRole int
	roles := map[domain.Role]int{}
	for _, p := range players {
		if _, ok := repos.TeamImage.GetFilename(ctx, p.Team); !ok {
			noLogo++
		}
		if !p.HasAge() {
			noAge++
		}
		if p.Continent == domain.UnknownContinent {
			unknownContinent++
		}
		if p.MostPlayedChampion == "" {
			noChampion++
		}
		if !p.Role.IsValid() {
			offListRole++
		}
		roles[p.Role]++
	}

	fmt.Fprintf(out, "players:            %d\n", len(players))
	fmt.Fprintf(out, "team logos:         %d\n", repos.TeamImage.Count())
	fmt.Fprintf(out, "without logo:       %d\n", noLogo)
	fmt.Fprintf(out, "without age:        %d\n", noAge)
	fmt.Fprintf(out, "unknown continent:  %d\n", unknownContinent)
	fmt.Fprintf(out, "without champion:   %d\n", noChampion)

	fmt.Fprintf(out, "unrecognized role:  %d\n", offListRole)

	for _, role := range domain.AllRoles {
		fmt.Fprintf(out, "role %-14s %d\n", role.String()+":", roles[role])
	}
	// off-list values after the five positions, alphabetically
	var others []string
	for role := range roles {
		if !role.IsValid() {
			others = append(others, role.String())
		}
	}
	sort.Strings(others)
	for _, role := range others {
		fmt.Fprintf(out, "role %-14s %d\n", role+":", roles[domain.Role(role)])
	}

	if !reveal {
		return nil
	}

	daily := service.NewDailyService(repos.Player, cfg.Location(), log)
	today, err := daily.Today(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "answer for %s: %s (%s)\n", daily.Date(), today.Username, today.DisplayName())

	return nil
}
