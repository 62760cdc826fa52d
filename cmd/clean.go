package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/basename/internal/termdata"
	"github.com/sells-group/basename/pkg/basename"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [name ...]",
	Short: "Print the base form of one or more organization names",
	Long: `Cleans each name given as an argument, or each line read from stdin
when no arguments are given. Position flags override the configured posture.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleaner, err := buildCleaner()
		if err != nil {
			return err
		}

		opts := cleanOptions(cmd)
		zap.L().Debug("cleaning",
			zap.Int("terms", len(cleaner.Catalog())),
			zap.Bool("prefix", opts.Prefix),
			zap.Bool("middle", opts.Middle),
			zap.Bool("suffix", opts.Suffix))

		names := args
		if len(names) == 0 {
			names, err = readLines(cmd.InOrStdin())
			if err != nil {
				return eris.Wrap(err, "clean: read stdin")
			}
		}

		concurrency, _ := cmd.Flags().GetInt("concurrency")
		for _, out := range cleanAll(cmd, cleaner, opts, names, concurrency) {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

// buildCleaner returns the default cleaner, or one rebuilt with the
// configured extra terms merged in.
func buildCleaner() (*basename.Cleaner, error) {
	if cfg.Terms.ExtraFile == "" {
		return basename.Default()
	}
	base, err := termdata.UniqueTerms()
	if err != nil {
		return nil, err
	}
	extra, err := termdata.FromFile(cfg.Terms.ExtraFile)
	if err != nil {
		return nil, err
	}
	return basename.New(append(base, extra...))
}

// cleanOptions merges the configured posture with any position flags set
// on the command line.
func cleanOptions(cmd *cobra.Command) basename.Options {
	opts := basename.Options{
		Prefix: cfg.Clean.Prefix,
		Middle: cfg.Clean.Middle,
		Suffix: cfg.Clean.Suffix,
	}
	if cmd.Flags().Changed("prefix") {
		opts.Prefix, _ = cmd.Flags().GetBool("prefix")
	}
	if cmd.Flags().Changed("middle") {
		opts.Middle, _ = cmd.Flags().GetBool("middle")
	}
	if cmd.Flags().Changed("suffix") {
		opts.Suffix, _ = cmd.Flags().GetBool("suffix")
	}
	return opts
}

// cleanAll fans the names out over a bounded worker group, keeping output
// in input order.
func cleanAll(cmd *cobra.Command, cleaner *basename.Cleaner, opts basename.Options, names []string, concurrency int) []string {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]string, len(names))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = cleaner.Clean(name, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func init() {
	cleanCmd.Flags().Bool("prefix", false, "remove designators at the start of the name")
	cleanCmd.Flags().Bool("middle", false, "remove designators in the interior of the name")
	cleanCmd.Flags().Bool("suffix", true, "remove designators at the end of the name")
	cleanCmd.Flags().Int("concurrency", 4, "names cleaned in parallel")
	rootCmd.AddCommand(cleanCmd)
}
