package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ternarybob/arbor"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/service"
)

// App is the calculator front-end. It owns the accumulator; only Update
// mutates it.
type App struct {
	ctx  context.Context
	cfg  config.Config
	acc  *calc.Accumulator
	tape *service.TapeService
	log  arbor.ILogger

	keys keyMap
	help help.Model

	state   appState
	row     int
	col     int
	pressed calc.Key

	entries    []repository.HistoryEntry
	tapeTotal  int
	tapeCursor int

	status    string
	statusErr bool
	width     int
	height    int
}

type appState string

const (
	viewKeypad appState = "keypad"
	viewTape   appState = "tape"
)

// New builds the UI. tape may be nil when the tape is disabled.
func New(ctx context.Context, cfg config.Config, tape *service.TapeService, log arbor.ILogger) *App {
	return &App{
		ctx:  ctx,
		cfg:  cfg,
		acc:  calc.New(),
		tape: tape,
		log:  log,
		keys: newKeyMap(),
		help: help.New(),
	}
}

// Accumulator exposes the calculator state for callers that embed the UI.
func (a *App) Accumulator() *calc.Accumulator { return a.acc }

func (a *App) Init() tea.Cmd {
	return a.loadTape()
}

func (a *App) loadTape() tea.Cmd {
	if a.tape == nil {
		return nil
	}
	n := a.cfg.History.Recent
	return func() tea.Msg {
		entries, err := a.tape.Recent(a.ctx, n)
		if err != nil {
			return errMsg{err}
		}
		total, err := a.tape.Count(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return tapeMsg{entries: entries, total: total}
	}
}

func (a *App) recordCmd(res calc.Result, display string) tea.Cmd {
	if a.tape == nil {
		return nil
	}
	return func() tea.Msg {
		e, err := a.tape.Record(a.ctx, res, display)
		if err != nil {
			return errMsg{err}
		}
		return recordedMsg(e)
	}
}

func (a *App) wipeTapeCmd() tea.Cmd {
	if a.tape == nil {
		return nil
	}
	return func() tea.Msg {
		if err := a.tape.Clear(a.ctx); err != nil {
			return errMsg{err}
		}
		return tapeMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.state == viewTape {
			return a.handleTapeKey(m)
		}
		return a.handleKeypadKey(m)
	case tapeMsg:
		a.entries = m.entries
		a.tapeTotal = m.total
		if a.tapeCursor >= len(a.entries) {
			a.tapeCursor = 0
		}
	case recordedMsg:
		a.entries = append([]repository.HistoryEntry{repository.HistoryEntry(m)}, a.entries...)
		if n := a.cfg.History.Recent; n > 0 && len(a.entries) > n {
			a.entries = a.entries[:n]
		}
		a.tapeTotal++
		if limit := a.cfg.History.Limit; limit > 0 && a.tapeTotal > limit {
			a.tapeTotal = limit
		}
	case errMsg:
		a.setError(m.error)
	}
	return a, nil
}

func (a *App) handleKeypadKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Up):
		a.row = (a.row + len(calc.Keypad) - 1) % len(calc.Keypad)
		return a, nil
	case key.Matches(m, a.keys.Down):
		a.row = (a.row + 1) % len(calc.Keypad)
		return a, nil
	case key.Matches(m, a.keys.Left):
		a.col = (a.col + len(calc.Keypad[0]) - 1) % len(calc.Keypad[0])
		return a, nil
	case key.Matches(m, a.keys.Right):
		a.col = (a.col + 1) % len(calc.Keypad[0])
		return a, nil
	case key.Matches(m, a.keys.Press):
		return a, a.press(calc.Keypad[a.row][a.col])
	case key.Matches(m, a.keys.Times):
		return a, a.press(calc.KeyMul)
	case key.Matches(m, a.keys.Clear):
		return a, a.press(calc.KeyClear)
	case key.Matches(m, a.keys.Tape):
		a.state = viewTape
		a.status = ""
		return a, a.loadTape()
	}
	if k, ok := calc.ParseKey(m.String()); ok {
		return a, a.press(k)
	}
	return a, nil
}

func (a *App) handleTapeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.state = viewKeypad
	case key.Matches(m, a.keys.Up):
		if a.tapeCursor > 0 {
			a.tapeCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.tapeCursor < len(a.entries)-1 {
			a.tapeCursor++
		}
	case key.Matches(m, a.keys.Recall):
		e, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.acc.Recall(e.Result)
		a.state = viewKeypad
		a.setStatus("recalled " + e.Display)
	case key.Matches(m, a.keys.Operand):
		// swap the left operand, keeping any pending operator
		e, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.acc.SetValue(e.Result)
		a.state = viewKeypad
		a.setStatus("loaded " + e.Display)
	case key.Matches(m, a.keys.Wipe):
		if a.tape == nil {
			a.setStatus("tape disabled")
			return a, nil
		}
		a.tapeCursor = 0
		a.setStatus("tape cleared")
		return a, a.wipeTapeCmd()
	}
	return a, nil
}

func (a *App) selected() (repository.HistoryEntry, bool) {
	if len(a.entries) == 0 {
		a.setStatus("tape is empty")
		return repository.HistoryEntry{}, false
	}
	return a.entries[a.tapeCursor], true
}

// press dispatches k and moves the keypad focus onto it.
func (a *App) press(k calc.Key) tea.Cmd {
	a.focus(k)
	a.pressed = k
	out, err := calc.Dispatch(a.acc, k)
	if err != nil {
		a.setError(err)
		return nil
	}
	a.status = ""
	if !out.Evaluated {
		return nil
	}
	display := a.acc.Display()
	if a.log != nil {
		a.log.Debug().Str("expression", out.Result.Expression).Str("result", display).Msg("evaluated")
	}
	return a.recordCmd(out.Result, display)
}

func (a *App) focus(k calc.Key) {
	for r, row := range calc.Keypad {
		for c, cell := range row {
			if cell == k {
				a.row, a.col = r, c
				return
			}
		}
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = fmt.Sprintf("error: %v", err)
	a.statusErr = true
	if a.log != nil {
		a.log.Warn().Err(err).Msg("calculator error")
	}
}

// messages
type tapeMsg struct {
	entries []repository.HistoryEntry
	total   int
}

type recordedMsg repository.HistoryEntry

type errMsg struct{ error }
