package encode

import (
	"strings"

	"github.com/fatih/color"
)

// ColorAttr classifies output tokens for colorization.
type ColorAttr int

const (
	NullColor ColorAttr = iota
	BoolColor
	NumberColor
	StringColor
	KeyColor
	PunctColor
)

// Palette maps token classes to color functions. Colored output is a
// display aid only; the escape sequences make it invalid JSON.
type Palette struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewPalette() *Palette {
	p := &Palette{
		Default: paletteDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			NullColor:   color.RGB(168, 0, 196).SprintfFunc(),
			BoolColor:   color.CyanString,
			NumberColor: color.RGB(128, 216, 236).SprintfFunc(),
			StringColor: color.RGB(8, 196, 16).SprintfFunc(),
			KeyColor:    color.RGB(128, 168, 196).SprintfFunc(),
			PunctColor:  color.RGB(196, 128, 128).SprintfFunc(),
		},
	}
	for k, f := range p.Map {
		p.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return p
}

func paletteDefault(v string, _ ...any) string { return v }

func (p *Palette) Color(a ColorAttr, s string) string {
	f := p.Map[a]
	if f == nil {
		return p.Default(s)
	}
	return f(s)
}
