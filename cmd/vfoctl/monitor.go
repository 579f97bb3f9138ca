package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print everything the device sends",
	Long: `Opens the port and prints each incoming line without sending any
commands. Useful for watching the DigitalVFO's unsolicited output. Stop it
with an interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vfo := connectVFO(locateDevice())

		ctx := cmd.Context()
		for {
			if err := ctx.Err(); err != nil {
				vfo.Close()
				return finishSession(err)
			}
			line, err := vfo.ReadLine()
			if err != nil {
				vfo.Close()
				return finishSession(err)
			}
			if line != "" {
				fmt.Println(line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
