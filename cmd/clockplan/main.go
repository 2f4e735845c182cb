// clockplan prints the clock tree a board is brought up with.
//
//	clockplan freq  [--mode overdrive]
//	clockplan trace [--board imxrt1010evk]
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "clockplan",
	Short:         "Inspect the i.MX RT clock plan",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(freqCmd, traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		println("clockplan:", err.Error())
		os.Exit(1)
	}
}
