package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"loto/internal/config"
	"loto/internal/db"
	"loto/internal/draw"
	"loto/internal/logger"
	"loto/internal/model"
	"loto/internal/stats"

	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how often each number was drawn",
	Long:  `Loads the history like the root command, indexes every valid draw of the selected format in an in-memory database, and prints number frequencies.`,
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		return runStats(cmd.OutOrStdout(), cmd.ErrOrStderr(), inputOptionsFrom(cmd, cfg), statsTop)
	},
}

func runStats(stdout, stderr io.Writer, opts inputOptions, top int) error {
	format, results, err := prepare(stderr, opts)
	if err != nil {
		return err
	}

	database, err := db.Connect(db.Memory)
	if err != nil {
		return err
	}
	defer db.Close(database)
	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("failed to create stats tables: %w", err)
	}

	indexed, err := stats.Index(database, format, results)
	if err != nil {
		return err
	}
	logger.Log.Debugf("Indexed %d of %d draws as %s", indexed, len(results), format.Name)

	mains, err := stats.Frequencies(database, model.KindMain)
	if err != nil {
		return err
	}
	bonus, err := stats.Frequencies(database, model.KindBonus)
	if err != nil {
		return err
	}
	total, err := stats.Total(database)
	if err != nil {
		return fmt.Errorf("failed to count indexed draws: %w", err)
	}
	first, last, err := stats.Span(database)
	if err != nil {
		return fmt.Errorf("failed to read date span: %w", err)
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(stdout, "\n📊 \033[1m%s STATISTICS\033[0m\n", format.Description)
	fmt.Fprintln(stdout, "────────────────────────────────────────")

	fmt.Fprintln(w, "\033[1;36m[ HISTORY ]\033[0m\t")
	fmt.Fprintf(w, "  Draws:\t%d\n", total)
	fmt.Fprintf(w, "  Skipped (other format):\t%d\n", len(results)-indexed)
	if first != nil && last != nil {
		fmt.Fprintf(w, "  From:\t%s\n", first.Date.Format(draw.DisplayLayout))
		fmt.Fprintf(w, "  To:\t%s\n", last.Date.Format(draw.DisplayLayout))
	}
	fmt.Fprintln(w, "\t")

	printFrequencies(w, "MAIN NUMBERS", mains, top)
	printFrequencies(w, "BONUS NUMBERS", bonus, top)

	w.Flush()
	fmt.Fprintln(stdout, "")
	return nil
}

func printFrequencies(w io.Writer, title string, freqs []stats.Frequency, top int) {
	fmt.Fprintf(w, "\033[1;36m[ %s ]\033[0m\t\n", title)
	if len(freqs) == 0 {
		fmt.Fprintln(w, "  (No draws indexed)")
	}
	if top > 0 && len(freqs) > top {
		freqs = freqs[:top]
	}
	for _, f := range freqs {
		fmt.Fprintf(w, "  %d:\t%d\n", f.Value, f.Count)
	}
	fmt.Fprintln(w, "\t")
}

func init() {
	statsCmd.Flags().IntVarP(&statsTop, "top", "t", 10, "Show only the N most frequent numbers (0 = all)")
	rootCmd.AddCommand(statsCmd)
}
