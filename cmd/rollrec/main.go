package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/rollrec/internal/config"
	"github.com/san-kum/rollrec/internal/dice"
	"github.com/san-kum/rollrec/internal/export"
	"github.com/san-kum/rollrec/internal/game"
	"github.com/san-kum/rollrec/internal/viz"
)

type options struct {
	configFile string
	threshold  int
	seed       int64
	output     string
	format     string
	theme      string
	playerA    string
	playerB    string
	jsonOut    bool
	verbose    bool
	noChart    bool
}

// main plays one game of Roll and Record and exits 1 only when the
// configuration is unusable.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "rollrec",
		Short:         "two-player roll and record dice game",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().IntVar(&opts.threshold, "threshold", game.DefaultThreshold, "count a single sum must reach to win")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().StringVar(&opts.output, "output", config.DefaultOutput, "chart image path (empty to skip)")
	rootCmd.Flags().StringVar(&opts.format, "format", "", "image format: png or svg (default from extension)")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "classic", fmt.Sprintf("console theme %v", viz.ThemeNames()))
	rootCmd.Flags().StringVar(&opts.playerA, "player-a", config.DefaultPlayerA, "first player's name")
	rootCmd.Flags().StringVar(&opts.playerB, "player-b", config.DefaultPlayerB, "second player's name")
	rootCmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as json")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every turn")
	rootCmd.Flags().BoolVar(&opts.noChart, "no-chart", false, "skip the terminal chart")

	return rootCmd
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// explicit flags win over file and environment
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("player-a") {
		cfg.Players.A = opts.playerA
	}
	if flags.Changed("player-b") {
		cfg.Players.B = opts.playerB
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	styles := viz.NewStyles(viz.GetTheme(cfg.Theme))

	gameOpts := cfg.GameOptions()
	if opts.verbose {
		gameOpts = append(gameOpts, game.WithObserver(turnLogger(stderr, cfg)))
	}

	res, err := game.New(dice.NewSource(cfg.Seed), gameOpts...).Play(cmd.Context())
	if err != nil {
		return err
	}

	// keep stdout clean for json consumers
	info := stdout
	if opts.jsonOut {
		if err := export.WriteJSON(stdout, res); err != nil {
			return err
		}
		info = stderr
	} else {
		fmt.Fprint(stdout, viz.Summary(res, styles))
		if !opts.noChart {
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, viz.FrequencyChart(res))
		}
	}

	if cfg.Output == "" {
		return nil
	}
	if err := export.Save(cfg.Output, cfg.ImageFormat(), res); err != nil {
		fmt.Fprintln(stderr, styles.Warning.Render(fmt.Sprintf("warning: chart not saved: %v", err)))
		return nil
	}
	fmt.Fprintf(info, "chart saved to %s\n", cfg.Output)
	return nil
}

func turnLogger(w io.Writer, cfg *config.Config) game.Observer {
	names := [2]string{cfg.Players.A, cfg.Players.B}
	return game.ObserverFunc(func(turn int, p game.Player, roll int) {
		fmt.Fprintf(w, "turn %3d: %s rolled %d\n", turn, names[p], roll)
	})
}
