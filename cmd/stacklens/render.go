package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stacklens/internal/analyze"
	"stacklens/internal/observ"
	"stacklens/internal/render"
	"stacklens/internal/sink"
	"stacklens/internal/snapshot"
)

// minBoxWidth ограничивает ширину отчёта снизу: уже этого рамка вырождается.
const minBoxWidth = 20

var renderCmd = &cobra.Command{
	Use:   "render [flags] snapshot.json",
	Short: "Render a thread snapshot into a bordered report",
	Long:  `Render reads a captured thread snapshot and prints a bordered text report with threads grouped by identical call stack`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("max-width", render.DefaultMaxWidth, "content width of report lines")
	renderCmd.Flags().Bool("raw-frames", false, "include raw stack frame text for each group")
	renderCmd.Flags().Int("jobs", 0, "number of parallel analysis workers (0 = GOMAXPROCS)")
	renderCmd.Flags().String("output", "", "write the report to this file as well")
	renderCmd.Flags().Bool("file", false, "write the report next to the snapshot (<name>.stacks.txt)")
}

func runRender(cmd *cobra.Command, args []string) error {
	snapshotPath := args[0]

	// Получаем флаги
	maxWidth, err := cmd.Flags().GetInt("max-width")
	if err != nil {
		return fmt.Errorf("failed to get max-width flag: %w", err)
	}
	rawFrames, err := cmd.Flags().GetBool("raw-frames")
	if err != nil {
		return fmt.Errorf("failed to get raw-frames flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	toFile, err := cmd.Flags().GetBool("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// stacklens.toml дополняет незаданные флаги, но никогда не перекрывает явные
	settings, found, err := loadRenderSettings(".")
	if err != nil {
		return err
	}
	if found {
		if settings.HasMaxWidth && !cmd.Flags().Changed("max-width") {
			maxWidth = settings.MaxWidth
		}
		if settings.HasRawFrames && !cmd.Flags().Changed("raw-frames") {
			rawFrames = settings.RawFrames
		}
		if settings.HasColor && !cmd.Root().PersistentFlags().Changed("color") {
			colorFlag = settings.Color
		}
	}

	if maxWidth < minBoxWidth {
		return fmt.Errorf("max-width must be at least %d, got %d", minBoxWidth, maxWidth)
	}
	if colorFlag != "auto" && colorFlag != "on" && colorFlag != "off" {
		return fmt.Errorf("unknown color mode: %s (supported: auto, on, off)", colorFlag)
	}

	timer := observ.NewTimer()

	done := timer.Begin("load")
	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d threads", len(snap.Threads)))

	done = timer.Begin("analyze")
	threads, err := analyze.Threads(cmd.Context(), snap, analyze.Options{Jobs: jobs})
	if err != nil {
		return err
	}
	done(fmt.Sprintf("%d groups", len(threads.Groups)))

	// Собираем приёмники: консоль всегда, файл по запросу
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	var console sink.Sink
	if useColor {
		console = sink.NewColor(os.Stdout)
	} else {
		console = sink.NewStream(os.Stdout)
	}

	reportPath := outputPath
	if reportPath == "" && toFile {
		reportPath = outputNameFromPath(snapshotPath)
	}

	var out sink.Sink
	if reportPath != "" {
		file, err := sink.NewFile(reportPath)
		if err != nil {
			return err
		}
		out = sink.NewMulti(console, file)
	} else {
		out = console
	}
	defer func() {
		if err := out.Close(); err != nil && !quiet {
			fmt.Fprintf(os.Stderr, "warning: failed to close output: %v\n", err)
		}
	}()

	done = timer.Begin("render")
	opts := render.Options{
		MaxWidth:  maxWidth,
		RawFrames: rawFrames,
	}
	if err := render.Report(out, threads, opts); err != nil {
		return err
	}
	done("")

	if reportPath != "" && !quiet {
		fmt.Fprintf(os.Stderr, "report written to %s\n", reportPath)
	}
	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
