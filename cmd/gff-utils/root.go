package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/frubino/gff-utils/internal/config"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/spf13/cobra"
)

// rootState is shared by the commands of one execution.
type rootState struct {
	opts cli.GlobalOptions
	app  *cli.App
}

func newRootCmd() (*cobra.Command, *rootState) {
	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:   "gff-utils",
		Short: "Utilities to manipulate GFF and GTF annotation files",
		Long: `gff-utils edits, filters and inspects GFF/GTF annotations as a stream.
Every annotation receives a uid attribute, so that later steps can select it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Name(), state.opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			state.app = app
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")
	flags.StringVar(&state.opts.ConfigPath, "config", "", "YAML configuration file (default $"+config.EnvPath+")")
	flags.StringVar(&state.opts.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
	flags.StringVar(&state.opts.Format, "format", "", "Input attribute format: gff or gtf (default gff)")
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeDialect)
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(
		[]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddCommand(
		newAddCmd(state),
		newRemoveCmd(state),
		newViewCmd(state),
		newTableCmd(state),
		newFieldsCmd(state),
		newConvertCmd(state),
		newGtfCmd(state),
		newVersionCmd(),
	)
	return rootCmd, state
}

func completeDialect(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{syntax.GFF.String(), syntax.GTF.String()}, cobra.ShellCompDirectiveNoFileComp
}

// inputOutput returns the optional positional input and output paths.
func inputOutput(args []string) (input, output string) {
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	return input, output
}
