// Kvforge is an interactive terminal builder for flat key-value mappings.
//
// It opens a full-screen editor in which pairs are typed one at a time and,
// on a confirmed exit, writes the collected mapping to stdout (or a file)
// as JSON or YAML. Two smaller demo screens, a bounded counter and a static
// banner, ship as subcommands.
//
// Usage:
//
//	kvforge [command] [flags]
//
// Running without arguments launches the editor. Output can be piped:
//
//	kvforge > pairs.json
//
// See 'kvforge --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt/kvforge/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kvforge",
	Short: "Interactive key-value mapping builder",
	Long: `A terminal application for building flat string-to-string mappings.

Pairs are entered through a guided editing screen and written out as
JSON or YAML when the session ends with confirmation. The mapping goes
to stdout by default so it can be piped into other tools.

If no command is specified, the editor launches automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kvforge %s (commit: %s)\n", version.Version, version.Commit)
	},
}
