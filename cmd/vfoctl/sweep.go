package main

import (
	"time"

	"github.com/spf13/cobra"

	"vfotool/session"
)

var (
	sweepStart int
	sweepStop  int
	sweepStep  int
	sweepDelay time.Duration
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Step the VFO frequency across a band",
	Long: `Verifies the device identifies as a DigitalVFO, then sends FS commands
stepping the frequency from --start to --stop inclusive. The run ends on its
own when the upper bound is passed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := session.NewSweep("FS", sweepStart, sweepStop, sweepStep)
		cfg := session.Config{Delay: sweepDelay}
		return runSession(cmd.Context(), src, cfg, nil, true)
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepStart, "start", 1000000, "Sweep start frequency in Hz")
	sweepCmd.Flags().IntVar(&sweepStop, "stop", 30000000, "Sweep stop frequency in Hz, inclusive")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 1000, "Sweep step in Hz")
	sweepCmd.Flags().DurationVar(&sweepDelay, "delay", 100*time.Millisecond, "Pause between commands")
	rootCmd.AddCommand(sweepCmd)
}
