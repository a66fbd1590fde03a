package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ai-heroes/internal/generator"
	"github.com/ziadkadry99/ai-heroes/internal/progress"
	"github.com/ziadkadry99/ai-heroes/internal/views"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one simulated character generation",
	Long:  `Triggers the generator, shows progress while the simulated pipeline runs, and prints the generated character.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cat, logger, err := setup()
		if err != nil {
			return err
		}
		if delay, _ := cmd.Flags().GetDuration("delay"); delay > 0 {
			cfg.Generator.Delay = delay
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sim := newSimulator(cfg, cat, logger)
		job, err := sim.Trigger()
		if err != nil {
			return fmt.Errorf("starting generation: %w", err)
		}

		reporter := progress.NewReporter(os.Stderr)
		if err := progress.Track(ctx, reporter, job.Done(), job.StartedAt, sim.Delay()); err != nil {
			return fmt.Errorf("generation interrupted: %w", err)
		}

		res, err := generator.Wait(ctx, job)
		if err != nil {
			return err
		}
		printFields(os.Stdout, views.CharacterFields(views.ResultPrefix, res.Character), views.ResultPrefix)
		return nil
	},
}

func init() {
	generateCmd.Flags().Duration("delay", 0, "simulated generation time (overrides config)")
	rootCmd.AddCommand(generateCmd)
}
