package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/calc"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewTape:
		body = a.renderTape()
	default:
		body = a.renderKeypad()
	}

	parts := []string{titleStyle.Render(a.cfg.UI.Title), body}
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = errorStatusStyle
		}
		parts = append(parts, style.Render(a.status))
	}
	if a.state == viewTape {
		parts = append(parts, a.help.View(tapeKeyMap{a.keys}))
	} else {
		parts = append(parts, a.help.View(a.keys))
	}
	view := strings.Join(parts, "\n")
	if a.width == 0 || a.height == 0 {
		return view
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, view)
}

// keypadWidth is the rendered width of one keypad row.
func keypadWidth() int {
	return len(calc.Keypad[0]) * (buttonWidth + buttonStyle.GetHorizontalMargins())
}

func (a *App) renderDisplay() string {
	style := a.currentDisplayStyle()
	inner := keypadWidth() - style.GetHorizontalFrameSize() - 1
	return style.Width(inner).Render(a.acc.Display())
}

func (a *App) currentDisplayStyle() lipgloss.Style {
	if a.acc.Evaluated() && a.acc.Operator() == calc.OpNone {
		return resultDisplayStyle
	}
	return displayStyle
}

func (a *App) renderKeypad() string {
	rows := make([]string, 0, len(calc.Keypad)+1)
	rows = append(rows, a.renderDisplay())
	for r, row := range calc.Keypad {
		cells := make([]string, 0, len(row))
		for c, k := range row {
			cells = append(cells, a.buttonStyleFor(k, r, c).Render(k.Label()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) buttonStyleFor(k calc.Key, r, c int) lipgloss.Style {
	focused := r == a.row && c == a.col
	switch {
	case focused && k == a.pressed:
		return pressedButtonStyle
	case focused:
		return hoveredButtonStyle
	case k == calc.KeyClear:
		return clearButtonStyle
	default:
		return buttonStyle
	}
}

func (a *App) renderTape() string {
	out := a.renderDisplay() + "\n"
	if a.tape == nil {
		return out + tapeEmptyStyle.Render("tape disabled (history.enabled = false)")
	}
	if len(a.entries) == 0 {
		return out + tapeEmptyStyle.Render("no calculations yet")
	}
	lines := make([]string, 0, len(a.entries)+1)
	lines = append(lines, statusStyle.Render(fmt.Sprintf("showing %d of %d", len(a.entries), a.tapeTotal)))
	for i, e := range a.entries {
		marker := "  "
		line := fmt.Sprintf("%s = %s", e.Expression, tapeResultStyle.Render(e.Display))
		if i == a.tapeCursor {
			marker = tapeCursorStyle.Render("▶ ")
		}
		lines = append(lines, marker+line+statusStyle.Render("  "+e.CreatedAt.Local().Format("15:04:05")))
	}
	return out + strings.Join(lines, "\n")
}
