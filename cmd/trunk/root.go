package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var opts tailOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "trunk [file]",
		Short: "Print the last lines of a file and optionally follow it",
		Long: `trunk prints the last lines of a file, or of standard input when no file
is given. With --follow it keeps printing lines as they are appended, and with
--sieve it prints only appended lines containing the given text, highlighting
every occurrence.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() {
				if err := opts.parseLineCount(cmd); err != nil {
					return err
				}
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&opts.numLines, "num-lines", "n", "", "Number of lines to print (default from tail.lines)")
	rootCmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "Keep printing lines appended to the file")
	rootCmd.Flags().StringVarP(&opts.sieve, "sieve", "s", "", "While following, print only lines containing this text (implies --follow)")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
