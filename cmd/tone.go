package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kuku/internal/cue"
	"github.com/abhisek/kuku/internal/tone"
)

var toneCmd = &cobra.Command{
	Use:       "tone <reveal|next|complete>",
	Short:     "Play a cue to check the audio device",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"reveal", "next", "complete"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, ok := cue.Named(args[0])
		if !ok {
			return fmt.Errorf("unknown cue %q: must be reveal, next or complete", args[0])
		}

		p, err := tone.Open()
		if err != nil {
			return err
		}
		defer p.Close()

		if err := p.Play(ev); err != nil {
			return fmt.Errorf("play cue: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), ev.Duration+time.Second)
		defer cancel()
		if err := p.Wait(ctx); err != nil {
			return fmt.Errorf("wait for cue: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "played %s: %.0f Hz for %s\n", args[0], ev.Frequency, ev.Duration)
		return nil
	},
}
