package input

import (
	"github.com/gdamore/tcell/v2"
)

// Key is a logical game key, decoupled from the terminal key that produced it
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit

	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// SpecialKeys maps non-rune tcell keys
	SpecialKeys map[tcell.Key]Key

	// Runes maps printable keys; lookups are case-insensitive for letters
	Runes map[rune]Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
			tcell.KeyEscape: KeyQuit,
		},
		Runes: map[rune]Key{
			'a': KeyLeft,
			'd': KeyRight,
			'h': KeyLeft,
			'l': KeyRight,
			' ': KeyFire,
			'q': KeyQuit,
		},
	}
}

// FromTcell resolves a tcell key event to a game key
func (t *KeyTable) FromTcell(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := t.Runes[r]
		return k, ok
	}
	k, ok := t.SpecialKeys[ev.Key()]
	return k, ok
}
