package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/Devon-White/html-grader/internal/config"
	"github.com/Devon-White/html-grader/internal/fetcher"
	"github.com/Devon-White/html-grader/internal/pipeline"
	"github.com/Devon-White/html-grader/internal/writer"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the html-grader command with its own flag set.
func NewRootCmd() *cobra.Command {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "html-grader",
		Short: "Check an HTML document for elements matching CSS selectors",
		Long: `html-grader reads an HTML document from a local file or a URL, evaluates
every CSS selector listed in a checks file against it, and prints whether each
selector matched at least one element.

The checks file holds a list of selector strings, as JSON (default checks.json)
or as YAML when its name ends in .yaml or .yml. Selectors are evaluated and
reported in sorted order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.File, "file", "f", "", "path to an HTML file")
	rootCmd.Flags().StringVarP(&cfg.URL, "url", "u", "", "URL of an HTML document")
	rootCmd.Flags().StringVarP(&cfg.ChecksFile, "checks", "c", config.DefaultChecksFile, "path to the checks file")
	rootCmd.Flags().StringVar(&cfg.Format, "format", writer.FormatJSON, "report format ("+strings.Join(writer.Formats, ", ")+")")
	rootCmd.Flags().IntVar(&cfg.Indent, "indent", 4, "JSON indentation width")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "also write the report to this file")
	rootCmd.Flags().DurationVar(&cfg.Timeout, "timeout", fetcher.DefaultTimeout, "HTTP request timeout")
	rootCmd.Flags().StringVar(&cfg.UserAgent, "user-agent", "html-grader/1.0", "custom User-Agent string")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "disable coloured text output")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")

	return rootCmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	cfg.ChecksSet = cmd.Flags().Changed("checks")
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	return pipeline.Run(ctx, cfg, cmd.OutOrStdout())
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
