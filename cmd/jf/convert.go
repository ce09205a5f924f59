package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
)

func convertRun(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		if err := convertOne(cfg, cc, file); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

func convertOne(cfg *ConvertConfig, cc *cli.Context, file string) error {
	d, err := readBytes(file)
	if err != nil {
		return err
	}
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return fmt.Errorf("bad yaml: %w", err)
	}
	v, cerr := ir.FromAny(x)
	if cerr != nil {
		return cerr
	}
	return encode.Encode(v, cc.Out, cfg.encCfg(cc.Out))
}
