package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trunk/internal/config"
	"trunk/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
		Args:  cobra.NoArgs,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Pass it with --config unless it is at the default location.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asTOML {
				encoded, err := cfg.Encode()
				if err != nil {
					return err
				}
				fmt.Fprint(out, encoded)
				return nil
			}
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			rows := [][]string{
				{"tail.lines", strconv.Itoa(cfg.Tail.Lines)},
				{"follow.truncation_notice", cfg.Follow.TruncationNotice},
				{"highlight.color", cfg.Highlight.Color},
				{"highlight.bold", yesNo(cfg.Highlight.Bold)},
				{"highlight.mode", cfg.Highlight.Mode},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			fmt.Fprintln(out, renderTable([]string{"Key", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "Print the configuration as TOML")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var follow bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and optionally an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")

			if strings.TrimSpace(inputPath) == "" {
				return nil
			}
			results := preflight.RunAll(inputPath, follow)
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				status := "ok"
				if !r.Passed {
					status = "failed"
					failed++
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d checks failed", preflight.ErrCheckFailed, failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Also check that this file can be tailed")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Include the checks needed for following")
	return cmd
}
