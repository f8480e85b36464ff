package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// ScannerKeyMap defines keybindings for the scanner screen.
type ScannerKeyMap struct {
	Scan    key.Binding
	Cancel  key.Binding
	Copy    key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k ScannerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Cancel, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k ScannerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scan, k.Cancel},
		{k.Copy, k.Dismiss},
		{k.Help, k.Quit},
	}
}

// DefaultScannerKeyMap returns the default scanner keybindings.
func DefaultScannerKeyMap() ScannerKeyMap {
	return ScannerKeyMap{
		Scan: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "scan"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "ok"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewHelp creates a themed help model.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.Subtle
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = theme.Subtle
	return h
}
