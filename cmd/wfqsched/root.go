package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wfqsched",
	Short: "wfqsched is a weighted fair queueing packet scheduler transducer.",
	Long: `wfqsched reads a trace of packet arrivals on multiple connections ` +
		`and emits the transmission schedule a Weighted Fair Queueing ` +
		`discipline would produce, approximating Generalized Processor Sharing.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
