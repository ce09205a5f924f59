package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/jsonio"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		if err := fmtOne(cfg, cc.Out, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

func fmtOne(cfg *FmtConfig, w io.Writer, file string) error {
	v, err := readDoc(file)
	if err != nil {
		return err
	}
	if cfg.Write {
		if file == "-" {
			return fmt.Errorf("%w: -w needs a file argument", cli.ErrUsage)
		}
		return jsonio.WriteFileAtomic(v, file, cfg.plainCfg(), nil)
	}
	ec := cfg.encCfg(w)
	if err := encode.Encode(v, w, ec); err != nil {
		return err
	}
	if ec.LineEnd == "" {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
