package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/fieldsense/go-json/encode"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='compact output'"`
	Pretty  bool `cli:"name=p aliases=pretty desc='pretty output with sorted keys'"`
	Color   bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// encCfg builds the encoding config for output going to w. Color is
// forced by -color, otherwise it turns on only when w is a terminal.
func (cfg *MainConfig) encCfg(w io.Writer) *encode.Config {
	var ec *encode.Config
	switch {
	case cfg.Compact:
		ec = encode.Compact()
	case cfg.Pretty:
		ec = encode.Pretty()
	default:
		ec = encode.Default()
	}
	if cfg.Color {
		ec.Colors = encode.NewPalette()
		return ec
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return ec
	}
	f, ok := w.(*os.File)
	if !ok {
		return ec
	}
	if isatty.IsTerminal(f.Fd()) {
		ec.Colors = encode.NewPalette()
	}
	return ec
}

// plainCfg is encCfg without any chance of color, for output that must
// stay machine-readable.
func (cfg *MainConfig) plainCfg() *encode.Config {
	ec := cfg.encCfg(io.Discard)
	ec.Colors = nil
	return ec
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result back to the source file'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='no per-file output, status only'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch argument is a file path'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type CleanConfig struct {
	*MainConfig
	Field string `cli:"name=f aliases=field desc='field to screen for missing values'"`
	Stats bool   `cli:"name=s aliases=stats desc='print cleaning stats on stderr'"`

	Clean *cli.Command
}
