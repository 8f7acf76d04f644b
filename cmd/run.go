package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/app"
	"github.com/abhisek/kuku/internal/cue"
	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/logging"
	"github.com/abhisek/kuku/internal/tone"
)

// runApp resolves configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	logger.Info("starting drill",
		"segment", settings.Segment,
		"mode", settings.Mode,
		"order", settings.Order,
		"speed", formatSpeed(float64(settings.Speed)),
		"sound", settings.Sound,
	)

	cues := cue.NewDispatcher(openTone, logger.WithPrefix(logging.Prefix + "/cue"))
	defer closeQuietly(cues, logger)

	ctrl := drill.New(drill.Options{
		Settings: settings,
		Cues:     cues,
		Logger:   logger.WithPrefix(logging.Prefix + "/drill"),
	})
	defer ctrl.Close()

	skip, _ := cmd.Flags().GetBool("no-welcome")
	return app.Run(app.Options{
		Controller:  ctrl,
		Logger:      logger,
		SkipWelcome: skip,
	})
}

// openTone adapts tone.Open to cue.Opener.
func openTone() (cue.Output, error) {
	return tone.Open()
}

func closeQuietly(d *cue.Dispatcher, logger *log.Logger) {
	if err := d.Close(); err != nil {
		logger.Debug("closing audio output", "err", err)
	}
}
