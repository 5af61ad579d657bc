// Package icon renders status glyphs in the variant selected by icons.variant.
package icon

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a glyph.
type Icon int

const (
	Success Icon = iota
	Fail
	Empty
	Top
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Success: {emoji: "✅", plain: "✔", squares: "🟩"},
	Fail:    {emoji: "❌", plain: "✖", squares: "🟥"},
	Empty:   {emoji: "🫙", plain: "∅", squares: "⬜"},
	Top:     {emoji: "👆", plain: "▲", squares: "🟦"},
}

// Get returns the glyph for i in the configured variant.
func Get(i Icon) string {
	return icons[i].get()
}
