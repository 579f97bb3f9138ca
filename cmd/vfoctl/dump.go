package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vfotool/logfile"
)

var dumpCharge bool

var dumpCmd = &cobra.Command{
	Use:   "dump <log-file>",
	Short: "Convert a log file to a plottable column table",
	Long: `Parses a telemetry log and prints whitespace-separated columns with an
hours-since-start time axis, ready for gnuplot. Use --charge for the older
six-field charger format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		if dumpCharge {
			samples, err := logfile.ReadChargeLog(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("# hours psv psi volts percent")
			for _, s := range samples {
				fmt.Printf("%.4f %.2f %d %.2f %d\n", s.Hours, s.PSV, s.PSI, s.Volts, s.Percent)
			}
			return nil
		}

		samples, err := logfile.ReadVoltageLog(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !logfile.Monotonic(samples) {
			fmt.Fprintln(os.Stderr, "Warning: time axis is not monotonic")
		}
		fmt.Println("# hours value")
		for _, s := range samples {
			fmt.Printf("%.4f %s\n", s.Hours, s.Value)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpCharge, "charge", false, "Parse the six-field charger log format")
	rootCmd.AddCommand(dumpCmd)
}
