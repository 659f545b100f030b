package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorFocus   = colorLavender
	colorPressed = colorPeach
	colorClear   = colorRed
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

const buttonWidth = 7

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)

	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Foreground(colorText).
			Background(colorCrust).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right)

	// a finished result gets a green frame until the next key
	resultDisplayStyle = displayStyle.BorderForeground(colorSuccess)

	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Margin(0, 1, 1, 0)

	hoveredButtonStyle = buttonStyle.Background(colorSurface1).Foreground(colorFocus).Bold(true)
	pressedButtonStyle = buttonStyle.Background(colorPressed).Foreground(colorBase).Bold(true)
	clearButtonStyle   = buttonStyle.Background(colorClear).Foreground(colorBase)

	statusStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStatusStyle = lipgloss.NewStyle().Foreground(colorError)
	tapeCursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	tapeResultStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	tapeEmptyStyle   = lipgloss.NewStyle().Foreground(colorWarning)
)
