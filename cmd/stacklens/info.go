package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stacklens/internal/analyze"
	"stacklens/internal/snapshot"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags] snapshot.json",
	Short: "Summarize a thread snapshot",
	Long:  `Info prints snapshot metadata and per-group stack statistics without rendering the full report`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Int("jobs", 0, "number of parallel analysis workers (0 = GOMAXPROCS)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	snapshotPath := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return err
	}
	threads, err := analyze.Threads(cmd.Context(), snap, analyze.Options{Jobs: jobs})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if snap.Process.Name != "" {
		fmt.Fprintf(out, "process: %s (pid %d)\n", snap.Process.Name, snap.Process.ID)
	}
	if snap.Process.CapturedAt != "" {
		fmt.Fprintf(out, "captured at: %s\n", snap.Process.CapturedAt)
	}
	fmt.Fprintf(out, "threads: %d\n", threads.ThreadCount)
	fmt.Fprintf(out, "unique stack traces: %d\n", len(threads.Groups))
	for _, g := range threads.Groups {
		fmt.Fprintf(out, "  %-10s %s\n", g.Kind, g.Header)
	}
	return nil
}
