package main

import (
	"time"

	"github.com/spf13/cobra"

	"vfotool/session"
)

var (
	cursorLo    int
	cursorHi    int
	cursorDelay time.Duration
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Bounce the digit cursor while sweeping the frequency",
	Long: `Interleaves CS commands walking the digit cursor back and forth between
--lo and --hi with the finite FS frequency sweep. The run ends when the
frequency sweep completes; the cursor bounces for as long as that takes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src := session.NewInterleave(
			session.NewSweep("FS", sweepStart, sweepStop, sweepStep),
			session.NewBounce("CS", cursorLo, cursorHi),
		)
		cfg := session.Config{Delay: cursorDelay}
		return runSession(cmd.Context(), src, cfg, nil, true)
	},
}

func init() {
	cursorCmd.Flags().IntVar(&sweepStart, "start", 1000000, "Sweep start frequency in Hz")
	cursorCmd.Flags().IntVar(&sweepStop, "stop", 30000000, "Sweep stop frequency in Hz, inclusive")
	cursorCmd.Flags().IntVar(&sweepStep, "step", 1000, "Sweep step in Hz")
	cursorCmd.Flags().IntVar(&cursorLo, "lo", 0, "Lowest cursor index")
	cursorCmd.Flags().IntVar(&cursorHi, "hi", 7, "Highest cursor index")
	cursorCmd.Flags().DurationVar(&cursorDelay, "delay", 100*time.Millisecond, "Pause between commands")
	rootCmd.AddCommand(cursorCmd)
}
