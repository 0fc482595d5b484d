package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeroclick/ddg/internal/cli"
	"github.com/zeroclick/ddg/internal/config"
	"github.com/zeroclick/ddg/internal/instantanswer"
)

var (
	configFile string
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "ddg [query]",
		Short:         "Query DuckDuckGo's Instant Answer API for the best text answer",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	flags := newQueryFlags()
	flags.register(rootCommand.Flags())
	rootCommand.Flags().BoolVar(&flags.showURLs, "urls", true, "Append the source URL to the answer")
	rootCommand.Flags().StringSliceVar(&flags.priority, "priority", nil, "Order of fields checked for an answer, e.g. answer,abstract,results.0")

	rootCommand.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := newClient(cfg)
		defer func() {
			_ = client.Close()
		}()

		opts := cli.AnswerOptions{
			Query:       flags.queryOptions(cmd.Flags(), cfg.Query),
			Priority:    cfg.Output.Priority,
			ShowURLs:    cfg.Output.ShowURLs,
			WebFallback: true,
		}
		if cmd.Flags().Changed("urls") {
			opts.ShowURLs = flags.showURLs
		}
		if len(flags.priority) > 0 {
			opts.Priority = flags.priority
		}

		answer, err := cli.Answer(cmd.Context(), client, strings.Join(args, " "), opts)
		if err != nil {
			return fmt.Errorf("cli.Answer > %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	}

	rootCommand.AddCommand(newShowCommand())
	return &rootCommand
}

// queryFlags are the flags shared by every command that issues a query.
// A flag only overrides the configured default when it was set.
type queryFlags struct {
	safeSearch bool
	html       bool
	meanings   bool
	showURLs   bool
	priority   []string
}

func newQueryFlags() *queryFlags {
	return &queryFlags{}
}

func (f *queryFlags) register(flags *pflag.FlagSet) {
	flags.BoolVar(&f.safeSearch, "safe-search", true, "Suppress adult content in the results")
	flags.BoolVar(&f.html, "html", false, "Allow HTML markup in the returned text")
	flags.BoolVar(&f.meanings, "meanings", true, "Include disambiguations in the results")
}

func (f *queryFlags) queryOptions(flags *pflag.FlagSet, cfg config.QueryConfig) instantanswer.QueryOptions {
	opts := instantanswer.QueryOptions{
		SafeSearch: cfg.SafeSearch,
		AllowHTML:  cfg.AllowHTML,
		Meanings:   cfg.Meanings,
	}
	if flags.Changed("safe-search") {
		opts.SafeSearch = f.safeSearch
	}
	if flags.Changed("html") {
		opts.AllowHTML = f.html
	}
	if flags.Changed("meanings") {
		opts.Meanings = f.meanings
	}
	return opts
}

func newClient(cfg *config.Config) *instantanswer.Client {
	return instantanswer.NewClient(instantanswer.Config{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
