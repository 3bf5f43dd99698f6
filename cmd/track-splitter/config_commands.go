package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tracksplitter/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
		Args:  requireSubcommand,
		RunE:  requireSubcommand,
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the sample configuration file",
		Args:        noArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := sampleTarget(targetPath)
			if err != nil {
				return err
			}
			if !overwrite {
				switch _, statErr := os.Stat(target); {
				case statErr == nil:
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				case !os.IsNotExist(statErr):
					return fmt.Errorf("check config path: %w", statErr)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit [tools] to point at other yt-dlp, ffmpeg or demucs builds, [transcode] for the WAV format.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// sampleTarget resolves where config init writes, defaulting to the per-user path.
func sampleTarget(flagValue string) (string, error) {
	if target := strings.TrimSpace(flagValue); target != "" {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return expanded, nil
	}
	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("determine default config path: %w", err)
	}
	return defaultPath, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and show the effective settings",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, renderTable([]string{"Section", "Setting", "Value"}, settingRows(cfg), !isTerminal(out)))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func settingRows(cfg *config.Config) [][]string {
	model := cfg.Separation.Model
	if model == "" {
		model = "(demucs default)"
	}
	return [][]string{
		{"tools", "downloader", cfg.Tools.Downloader},
		{"tools", "transcoder", cfg.Tools.Transcoder},
		{"tools", "separator", cfg.Tools.Separator},
		{"download", "output_template", cfg.Download.OutputTemplate},
		{"download", "extra_args", strings.Join(cfg.Download.ExtraArgs, " ")},
		{"discovery", "extensions", strings.Join(cfg.Discovery.Extensions, ", ")},
		{"transcode", "audio_args", strings.Join(cfg.AudioArgs(), " ")},
		{"transcode", "format", fmt.Sprintf("%s, %d Hz, %d ch", cfg.Transcode.Codec, cfg.Transcode.SampleRate, cfg.Transcode.Channels)},
		{"separation", "enabled", yesNo(cfg.Separation.Enabled)},
		{"separation", "subdir", cfg.Separation.Subdir},
		{"separation", "model", model},
		{"paths", "lock_dir", cfg.Paths.LockDir},
		{"logging", "format", cfg.Logging.Format},
		{"logging", "level", cfg.Logging.Level},
	}
}
