package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "playperf",
	Short:   "HTTP streaming-download performance tester",
	Version: version,
	Long: `playperf opens many concurrent HTTP GET connections against one or more
URLs, streams response bodies until a byte cap or end-of-stream, and reports
per-phase latency (DNS, connect, header, first byte) and sustained
throughput, aggregated per-URL and across the whole run.`,
	RunE: runRun,
}

func init() {
	registerRunFlags(rootCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
}
