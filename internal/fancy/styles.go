package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	SamplerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ControllerStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	ManagerStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray).
			Strikethrough(true)

	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// SamplerText styles a sampler text
func SamplerText(text string) string {
	return SamplerStyle.Render(text)
}

// ControllerText styles a controller or thread-group text
func ControllerText(text string) string {
	return ControllerStyle.Render(text)
}

// ManagerText styles a header-manager text
func ManagerText(text string) string {
	return ManagerStyle.Render(text)
}

// DisabledText styles a disabled element text
func DisabledText(text string) string {
	return DisabledStyle.Render(text)
}

// MatchText styles a matched preview entry (green)
func MatchText(text string) string {
	return MatchStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}
