package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stacklens/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stacklens",
	Short: "Thread snapshot report renderer",
	Long:  `Stacklens renders captured thread snapshots into bordered text reports, grouping threads by identical call stack`,
}

// main registers subcommands and persistent flags, then executes the root
// command. A failed command exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
