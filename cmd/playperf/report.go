package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studiowebux/playperf/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report [run-id]",
	Short: "Print a saved run's summary lines (defaults to the most recent --save run)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	path, err := historyDBPath()
	if err != nil {
		return err
	}

	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer st.Close()

	run, err := resolveRun(st, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  clients=%d recvlen=%d\n",
		run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Clients, run.RecvLen)
	fmt.Fprintf(cmd.OutOrStdout(), "Overall: %s\n\n", run.OverallLine)

	summaries, err := st.URLSummaries(run.ID)
	if err != nil {
		return fmt.Errorf("load per-URL summaries: %w", err)
	}
	urls := make([]string, 0, len(summaries))
	for u := range summaries {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	for _, u := range urls {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n", u, summaries[u])
	}
	return nil
}

func resolveRun(st *store.Store, args []string) (store.RunRecord, error) {
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return store.RunRecord{}, fmt.Errorf("invalid run id %q: %w", args[0], err)
		}
		return st.GetRun(id)
	}

	runs, err := st.ListRuns(1)
	if err != nil {
		return store.RunRecord{}, fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		return store.RunRecord{}, fmt.Errorf("no saved runs (use --save on a run to record one)")
	}
	return runs[0], nil
}
