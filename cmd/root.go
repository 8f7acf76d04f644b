package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/config"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kuku",
		Short: "Multiplication table flash drill",
		Long:  "kuku (フラッシュ九九) drills the 1 to 9 times tables in the terminal, by hand or on a timer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.Int("segment", 0, "Times table to drill, 1-9 (overrides KUKU_SEGMENT)")
	f.String("mode", "", "Display mode: manual or auto (overrides KUKU_MODE)")
	f.String("order", "", "Problem order: asc, desc or random (overrides KUKU_ORDER)")
	f.String("speed", "", "Auto-play step in seconds: 0.5, 1, 2 or 3 (overrides KUKU_SPEED)")
	f.Bool("mute", false, "Start with sound off (overrides KUKU_MUTE)")
	f.String("log-file", "", "Write logs to this file (overrides KUKU_LOG_FILE)")
	f.Bool("debug", false, "Log at debug level (overrides KUKU_DEBUG)")
	cmd.Flags().Bool("no-welcome", false, "Skip the welcome screen")

	cmd.AddCommand(versionCmd)
	cmd.AddCommand(toneCmd)
	return cmd
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveConfig builds the configuration from defaults, then KUKU_*
// environment variables, then flags that were set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("segment") {
		cfg.Segment, _ = flags.GetInt("segment")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("order") {
		cfg.Order, _ = flags.GetString("order")
	}
	if flags.Changed("speed") {
		cfg.Speed, _ = flags.GetString("speed")
	}
	if flags.Changed("mute") {
		cfg.Mute, _ = flags.GetBool("mute")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func formatSpeed(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
