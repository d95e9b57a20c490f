package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"loto/internal/config"
	"loto/internal/formats"
	"loto/internal/logger"

	"github.com/spf13/cobra"
)

var cfgFile string
var verbose bool
var logFile string
var showReport bool

var repository string
var files []string
var lotoFormat string

var exist string
var maxAttempts int
var seed int64

var rootCmd = &cobra.Command{
	Use:   "loto",
	Short: "Generate a never-drawn loto grid, or check whether a grid was already drawn",
	Long: `Reads FDJ history files (loto 5 balls, loto 6 balls, EuroMillions), then either
prints a random draw that never came out, or with --exist tells whether the given
draw is valid for the selected format and whether it was already drawn.`,
	Example: `  loto -r ./loto_data/loto
  loto -f loto_201911.csv -f loto_201902.csv -l 5_boules -e 1-2-3-4-5+6
  loto -r ./loto_data/euromillion -l euromillion`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	// Execute prints errors itself, once, on stderr.
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		opts := drawOptions{
			inputOptions: inputOptionsFrom(cmd, cfg),
			exist:        exist,
			exists:       cmd.Flags().Changed("exist"),
			maxAttempts:  cfg.Generator.MaxAttempts,
			seed:         cfg.Generator.Seed,
		}
		if cmd.Flags().Changed("max-attempts") {
			opts.maxAttempts = maxAttempts
		}
		if cmd.Flags().Changed("seed") {
			opts.seed = seed
		}

		return runDraw(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		reportError(os.Stderr, cmd, err)
		os.Exit(1)
	}
}

// reportError prints err; usage errors are followed by the command usage.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintln(w, "Error:", err)
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(w, cmd.UsageString())
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{msg: err.Error()}
	}
	return nil
}

func formatHelp() string {
	var parts []string
	for _, f := range formats.All() {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Name, f.Description))
	}
	return "Draw format, one of " + strings.Join(parts, ", ")
}

// inputOptionsFrom merges input flags over the config file values.
func inputOptionsFrom(cmd *cobra.Command, cfg *config.Config) inputOptions {
	opts := inputOptions{
		repository: repository,
		files:      files,
		format:     cfg.Draw.Format,
		delimiters: cfg.Input.Delimiters,
		progress:   cfg.Input.Progress,
		report:     showReport,
	}
	if repository == "" && len(files) == 0 {
		opts.repository = cfg.Input.Repository
	}
	if cmd.Flags().Changed("loto-format") {
		opts.format = lotoFormat
	}
	return opts
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr (overwrites file)")
	rootCmd.PersistentFlags().BoolVar(&showReport, "report", false, "Print a history load report on stderr")

	rootCmd.PersistentFlags().StringVarP(&repository, "repository", "r", "", "Directory holding history files")
	rootCmd.PersistentFlags().StringArrayVarP(&files, "file", "f", nil, "History file (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&lotoFormat, "loto-format", "l", formats.Default.Name, formatHelp())

	rootCmd.Flags().StringVarP(&exist, "exist", "e", "", "Check a draw such as 1-2-3-4-5+6 instead of generating one")
	rootCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Give up generating after this many already-drawn candidates (0 = never)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for generation (0 = time based)")
}
