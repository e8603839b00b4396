package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veldt/kvforge/internal/config"
	"github.com/veldt/kvforge/internal/editor"
	"github.com/veldt/kvforge/internal/emit"
	"github.com/veldt/kvforge/internal/logging"
	"github.com/veldt/kvforge/internal/tui"
)

// Command flags
var (
	outputPath   string
	outputFormat string
	counterMin   int
	counterMax   int
	helloText    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write the mapping to a file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format (json, yaml)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(helloCmd)
}

// editCmd runs the interactive key-value editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Build a key-value mapping interactively",
	Long: `Open the full-screen key-value editor.

On the main screen, press 'e' to add a pair and 'q' to leave. Inside the
editing popup, Enter advances from key to value and then saves the pair,
Tab switches between the two fields, and Esc abandons the pair. Leaving
with 'q' asks whether to write the collected mapping to the output.`,
	Example: `  # Edit and print the mapping as JSON
  kvforge edit

  # Pipe the mapping into a file
  kvforge edit > pairs.json

  # YAML output to an explicit file
  kvforge edit --format yaml --output pairs.yaml`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	format, path, err := resolveOutput()
	if err != nil {
		return err
	}

	// Render to stderr so a redirected stdout receives only the emitted
	// mapping, never UI frames.
	p := tea.NewProgram(tui.NewEditorModel(), tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	model, ok := final.(tui.EditorModel)
	if !ok {
		return fmt.Errorf("unexpected final model type %T", final)
	}

	if model.Outcome() != editor.ResultExitAndEmit {
		logging.LogSession(len(model.State.Pairs), false, string(format))
		return nil
	}

	if err := emit.WriteFile(path, model.State.Pairs, format); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	logging.LogSession(len(model.State.Pairs), true, string(format))

	return nil
}

// resolveOutput combines flags and the preferences file into the effective
// emit format and path. Flags win over preferences.
func resolveOutput() (emit.Format, string, error) {
	prefs, err := config.Load()
	if err != nil {
		// An unreadable preferences file should not block an editing
		// session; fall back to defaults and say so.
		logging.Warn("Could not load preferences, using defaults", zap.Error(err))
		prefs = config.NewPreferences()
	}

	name := prefs.Emit.Format
	if outputFormat != "" {
		name = outputFormat
	}
	format, err := emit.ParseFormat(name)
	if err != nil {
		return "", "", err
	}

	path := prefs.Emit.Path
	if outputPath != "" {
		path = outputPath
	}

	return format, path, nil
}

// counterCmd runs the bounded counter demo
var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the bounded counter demo",
	Long: `Open a full-screen counter bounded to a configurable range.

Left/h decrements and Right/l increments; presses past either bound do
nothing. Press 'q' to quit.`,
	RunE: runCounter,
}

func init() {
	counterCmd.Flags().IntVar(&counterMin, "min", 0, "Lower bound")
	counterCmd.Flags().IntVar(&counterMax, "max", 255, "Upper bound")
}

func runCounter(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	min, max := counterMin, counterMax
	if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") {
		if prefs, err := config.Load(); err == nil {
			min, max = prefs.Counter.Min, prefs.Counter.Max
		}
	}

	p := tea.NewProgram(tui.NewCounterModel(min, max), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("counter error: %w", err)
	}
	return nil
}

// helloCmd runs the static banner demo
var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Show the static banner demo",
	Long:  `Display a styled banner until 'q' is pressed.`,
	RunE:  runHello,
}

func init() {
	helloCmd.Flags().StringVar(&helloText, "message", "", "Banner text (defaults to the configured message)")
}

func runHello(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	message := helloText
	if message == "" {
		if prefs, err := config.Load(); err == nil {
			message = prefs.HelloMessage
		} else {
			message = config.NewPreferences().HelloMessage
		}
	}

	p := tea.NewProgram(tui.NewHelloModel(message), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("hello error: %w", err)
	}
	return nil
}
