package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/tradescan/tradescan/pkg/config"
	"github.com/tradescan/tradescan/pkg/parser"
	"github.com/tradescan/tradescan/pkg/plan"
)

var (
	cliFilters filters
	cfgFile    string
	asJSON     bool
	dump       bool
)

var rootCmd = &cobra.Command{
	Use:   "tradescan",
	Short: "Extract canonical trade records from trade-history files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert trade-history files (csv, xls, pdf, txt) to canonical records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}

		processor := NewFileProcessor(logger, cfg, &cliFilters)

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if fileInfo.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
			} else {
				if err := processor.ProcessFile(match); err != nil {
					logger.Warn("failed to process file", "error", err, "file", match)
				}
			}
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Run a YAML batch-import manifest and report per-file counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan preview for %s\n", args[0])
		p.Print()

		prs := parser.New(logger, parser.WithShapeMode(parser.ShapeMode(cfg.ShapeMode)))
		trades, results := p.Run(prs, logger)

		fmt.Println("Summary:")
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("  - %s : failed (%v)\n", res.Path, res.Err)
				continue
			}
			fmt.Printf("  - %s : %d trades\n", res.Path, res.Count)
		}
		fmt.Printf("total: %d trades\n", len(trades))
		return nil
	},
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "tradescan",
	})
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("shape_mode", "first-match", "Free-text line-shape policy: first-match or union")

	// Output filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.asset, "asset", "", "Filter by asset (case insensitive substring)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.direction, "direction", "", "Filter by direction (call or put)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum trade amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum trade amount")

	// Flags specific to the convert subcommand
	convertCmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON instead of CSV")
	convertCmd.Flags().BoolVar(&dump, "dump", false, "Pretty-print parsed records for debugging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
