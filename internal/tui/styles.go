package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/veldt/kvforge/internal/version"
)

// Application branding constants
const (
	AppName   = "KVFORGE"
	GitHubURL = "github.com/veldt/kvforge"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 96 // Maximum content width before capping
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	AccentColor  = lipgloss.Color("#43BF6D") // Green
	WarningColor = lipgloss.Color("#FFA500") // Orange
	ErrorColor   = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Common styles
var (
	// Title style - bold, padded header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Pair list entry style
	PairStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Pair key portion
	PairKeyStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Focused input field style
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Blurred input field style
	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Editing popup container
	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Exit confirmation banner
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(1, 2)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Hello banner style
	BannerStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("#2551B8")).
			Bold(true).
			Padding(1, 4)

	// Counter value style
	CounterValueStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)
)

// RenderTitle renders a screen title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderHeader renders the shared application header line
func RenderHeader(screenName string) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(screenName)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
