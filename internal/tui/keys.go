package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Press   key.Binding
	Times   key.Binding
	Clear   key.Binding
	Tape    key.Binding
	Recall  key.Binding
	Operand key.Binding
	Wipe    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Times:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "×")),
		Clear:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("c/bksp", "clear")),
		Tape:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tape")),
		Recall:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "recall")),
		Operand: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "use as operand")),
		Wipe:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "wipe tape")),
		Back:    key.NewBinding(key.WithKeys("esc", "t"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Clear, k.Tape, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Times, k.Clear},
		{k.Tape, k.Quit},
	}
}

// tapeKeyMap is the help shown while the tape view is open.
type tapeKeyMap struct {
	keyMap
}

func (k tapeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Recall, k.Operand, k.Wipe, k.Back, k.Quit}
}

func (k tapeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Recall, k.Operand}, {k.Wipe, k.Back, k.Quit}}
}
