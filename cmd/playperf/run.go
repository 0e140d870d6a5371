package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/studiowebux/playperf/internal/arena"
	"github.com/studiowebux/playperf/internal/config"
	"github.com/studiowebux/playperf/internal/report"
	"github.com/studiowebux/playperf/internal/store"
	"github.com/studiowebux/playperf/internal/tui"
)

var (
	flagClients   int
	flagRecvLen   uint64
	flagInterval  int64
	flagTimeout   int64
	flagURLs      string
	flagConfig    string
	flagDetail    bool
	flagLive      bool
	flagSave      bool
	flagOutputDir string
)

func registerRunFlags(cmd *cobra.Command) {
	defaults := config.Default()
	cmd.Flags().IntVarP(&flagClients, "clients", "n", defaults.NumClients, "concurrency")
	cmd.Flags().Uint64VarP(&flagRecvLen, "recvlen", "r", defaults.RecvLen, "per-session body cap in bytes")
	cmd.Flags().Int64VarP(&flagInterval, "interval", "i", defaults.IntervalUs, "inter-launch delay in microseconds")
	cmd.Flags().Int64VarP(&flagTimeout, "timeout", "t", defaults.TimeoutSecs, "inactivity watchdog in seconds")
	cmd.Flags().StringVarP(&flagURLs, "urls", "u", "", "comma/newline/tab separated URL list")
	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "JSON config file; flags override its values")
	cmd.Flags().BoolVarP(&flagDetail, "detail", "d", false, "capture per-sample series and export CSV")
	cmd.Flags().BoolVar(&flagLive, "live", false, "show a live progress view while the run is in flight")
	cmd.Flags().BoolVar(&flagSave, "save", false, "persist this run's summaries to the history database")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", ".", "directory to write --detail CSV files into")
}

func runRun(cmd *cobra.Command, args []string) error {
	values := config.Default()
	values.NumClients = flagClients
	values.RecvLen = flagRecvLen
	values.IntervalUs = flagInterval
	values.TimeoutSecs = flagTimeout
	values.Detail = flagDetail
	values.URLList = config.SplitURLs(flagURLs)

	if flagConfig != "" {
		f, err := config.LoadFile(flagConfig)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		} else {
			flagsSet := map[string]bool{
				"clients":  cmd.Flags().Changed("clients"),
				"recvlen":  cmd.Flags().Changed("recvlen"),
				"interval": cmd.Flags().Changed("interval"),
				"timeout":  cmd.Flags().Changed("timeout"),
				"detail":   cmd.Flags().Changed("detail"),
			}
			values = values.Merge(f, flagsSet)
		}
	}

	if !values.IsReady() {
		cmd.Help()
		return fmt.Errorf("no URLs configured")
	}

	a, err := arena.New(values)
	if err != nil {
		return fmt.Errorf("configure run: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	watcherDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fmt.Fprintln(cmd.OutOrStdout(), "Interrupting test loop")
		case <-watcherDone:
		}
	}()

	startedAt := time.Now()
	runErrCh := make(chan error, 1)
	go func() { runErrCh <- a.Run(ctx) }()

	if flagLive {
		if err := tui.Run(a, values.Clients(), a.Done()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: live view exited early: %v\n", err)
		}
	}

	runErr := <-runErrCh
	close(watcherDone)
	if runErr != nil {
		return runErr
	}

	report.PrintText(cmd.OutOrStdout(), a.OverallSummary(), a.PerURLSummaries())

	if values.Detailed() {
		if err := report.WriteDetailCSVs(flagOutputDir, a.PerURLSummaries()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	if flagSave {
		if err := saveRunHistory(startedAt, values, a); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to save run history: %v\n", err)
		}
	}

	return nil
}

func saveRunHistory(startedAt time.Time, values config.Values, a *arena.Arena) error {
	path, err := historyDBPath()
	if err != nil {
		return err
	}
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := store.RunConfig{
		Clients:    values.Clients(),
		RecvLen:    values.MaxRecvLength(),
		IntervalUs: values.IntervalUs,
		TimeoutS:   values.TimeoutSecs,
		Detail:     values.Detailed(),
	}
	_, err = st.SaveRun(startedAt, cfg, a.OverallSummary(), a.PerURLSummaries())
	return err
}
