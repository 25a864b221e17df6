package ui

import (
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/atomicstack/tmux-workspace/internal/launcher"
)

type keyMap struct {
	Confirm   key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Close     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open layout")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		Close:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "close")),
	}
}

// actionsFor decodes a key press. Printable text becomes one insert per
// rune; anything else unbound decodes to nothing.
func (k keyMap) actionsFor(msg tea.KeyPressMsg) []launcher.Action {
	switch {
	case key.Matches(msg, k.Confirm):
		return []launcher.Action{{Kind: launcher.ActionConfirm}}
	case key.Matches(msg, k.Backspace):
		return []launcher.Action{{Kind: launcher.ActionDeleteBackward}}
	case key.Matches(msg, k.Left):
		return []launcher.Action{{Kind: launcher.ActionMoveLeft}}
	case key.Matches(msg, k.Right):
		return []launcher.Action{{Kind: launcher.ActionMoveRight}}
	case key.Matches(msg, k.Close):
		return []launcher.Action{{Kind: launcher.ActionClose}}
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 || msg.Text == "" {
		return nil
	}
	var actions []launcher.Action
	for _, r := range msg.Text {
		if !unicode.IsPrint(r) {
			continue
		}
		actions = append(actions, launcher.Insert(r))
	}
	return actions
}
