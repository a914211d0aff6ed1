package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/stparse/stparse/pkg/config"
	"github.com/stparse/stparse/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
	debugDump  bool
)

var rootCmd = &cobra.Command{
	Use:   "stparse",
	Short: "Extract transactions from bank, credit card and UPI statements",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <input_path>",
	Short: "Parse statement files and print or write the transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)
		processor.SetFilter(cliFilters.toFilterFunc())

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if info.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
				continue
			}

			if cfg.Output.Dir != "" {
				if err := processor.ProcessFile(match); err != nil {
					logger.Warn("failed to process file", "error", err, "file", match)
				}
				continue
			}

			// No output directory: print to stdout.
			result, err := processor.Parse(match)
			if err != nil {
				logger.Warn("failed to process file", "error", err, "file", match)
				continue
			}
			if debugDump {
				pp.Println(result)
				continue
			}
			out, err := processor.Render(result)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Process every statement listed in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)
		processor.SetFilter(cliFilters.toFilterFunc())
		return processor.ProcessManifest(args[0])
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "stparse",
	}
	if debugDump {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugDump, "debug", false, "Debug logging and full result dump")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (DD/MM/YYYY)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (DD/MM/YYYY)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.description, "description", "", "Filter by description (case insensitive)")

	// Output flags shared by parse and batch
	for _, cmd := range []*cobra.Command{parseCmd, batchCmd} {
		cmd.Flags().String("format", "csv", "Output format: csv or json")
		cmd.Flags().StringP("output", "o", "", "Output directory (default: next to input)")
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
