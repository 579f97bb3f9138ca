package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vfotool/locate"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports and their USB identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := locate.USBEnumerator{}.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found.")
			return nil
		}

		for _, p := range ports {
			if p.VendorID == 0 && p.ProductID == 0 {
				fmt.Printf("%s\n", p.Port)
				continue
			}
			fmt.Printf("%s  %04x:%04x", p.Port, p.VendorID, p.ProductID)
			if p.Product != "" {
				fmt.Printf("  %s", p.Product)
			}
			if p.Serial != "" {
				fmt.Printf("  serial=%s", p.Serial)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
