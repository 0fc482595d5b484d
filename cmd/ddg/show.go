package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeroclick/ddg/internal/cli"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatText, FormatJSON}
)

func newShowCommand() *cobra.Command {
	flags := newQueryFlags()
	format := FormatText
	showCommand := cobra.Command{
		Use:   "show [query]",
		Short: "Show every populated field of the Instant Answer response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := newClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			opts := cli.ShowOptions{
				Query:   flags.queryOptions(cmd.Flags(), cfg.Query),
				AsJSON:  format == FormatJSON,
				NoColor: cfg.Output.NoColor,
			}
			if err := cli.Show(cmd.Context(), client, strings.Join(args, " "), opts, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("cli.Show > %w", err)
			}
			return nil
		},
	}
	flags.register(showCommand.Flags())
	showCommand.Flags().Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	return &showCommand
}
