package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"vfotool/session"
)

var recordDelay time.Duration

var recordCmd = &cobra.Command{
	Use:   "record <output-file>",
	Short: "Exercise the command loop and log every response",
	Long: `Discards the banner line a freshly opened port may carry, then sends
numbered CMD probes forever, appending one "<timestamp>,<response>" line per
cycle to the output file. Stop it with an interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := session.NewCounter("CMD")
		cfg := session.Config{
			Delay:       recordDelay,
			DrainBanner: true,
			Echo:        os.Stdout,
		}
		return runLoggedSession(cmd.Context(), src, cfg, args[0], false)
	},
}

func init() {
	recordCmd.Flags().DurationVar(&recordDelay, "delay", 2*time.Second, "Pause between commands")
	rootCmd.AddCommand(recordCmd)
}
