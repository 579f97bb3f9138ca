package main

import (
	"time"

	"github.com/spf13/cobra"

	"vfotool/session"
)

var voltsDelay time.Duration

var voltsCmd = &cobra.Command{
	Use:   "volts <output-file>",
	Short: "Log battery voltage telemetry",
	Long: `Polls the device's measured battery voltage with VG and appends one
"<timestamp>,<volts>" line per reading to the output file, the format the
charge and discharge plots consume. Stop it with an interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := session.Config{Delay: voltsDelay}
		return runLoggedSession(cmd.Context(), session.Fixed("VG;"), cfg, args[0], true)
	},
}

func init() {
	voltsCmd.Flags().DurationVar(&voltsDelay, "delay", 30*time.Second, "Pause between readings")
	rootCmd.AddCommand(voltsCmd)
}
