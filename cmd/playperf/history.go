package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studiowebux/playperf/internal/store"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs saved with --save",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "l", 20, "maximum number of runs to show")
}

func historyDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".playperf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %q: %w", dir, err)
	}
	return filepath.Join(dir, "playperf.db"), nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := historyDBPath()
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved runs (use --save on a run to record one)")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  clients=%d recvlen=%d\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Clients, r.RecvLen)
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", r.OverallLine)
	}
	return nil
}
