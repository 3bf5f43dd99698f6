package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tracksplitter/internal/preflight"
	"tracksplitter/internal/services"
)

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:   "track-splitter <output_dir> <youtube_url> <basename>",
		Short: "Download a YouTube video, extract WAV audio and split it into stems",
		Long: `track-splitter downloads a video with yt-dlp, converts its audio to a
44.1 kHz stereo WAV file with ffmpeg and separates that file into stems with
demucs. All artifacts are written below <output_dir>.

An output directory named like a subcommand must be written as ./doctor.`,
		Example:       "  track-splitter $PWD 'https://www.youtube.com/watch?v=Zi_XLOACo_Y' billie-jean",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != preflight.ArgCount {
				return services.Wrap(services.ErrUsage, "", "",
					fmt.Sprintf("expected %d arguments, got %d", preflight.ArgCount, len(args)), nil)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, ctx, args)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return services.Wrap(services.ErrUsage, "", "", "", err)
	})

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&flags.noSeparate, "no-separate", false, "Skip stem separation for this run")

	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// noArgs rejects positional arguments on subcommands as a usage error, so a
// stray argument fails the same way a wrong argument count does.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return services.Wrap(services.ErrUsage, "", "",
			fmt.Sprintf("%s takes no arguments, got %d", cmd.CommandPath(), len(args)), nil)
	}
	return nil
}

// requireSubcommand fails group commands that were invoked without one of
// their subcommands.
func requireSubcommand(cmd *cobra.Command, _ []string) error {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			names = append(names, sub.Name())
		}
	}
	return services.Wrap(services.ErrUsage, "", "",
		fmt.Sprintf("%s requires a subcommand (%s)", cmd.CommandPath(), strings.Join(names, ", ")), nil)
}
