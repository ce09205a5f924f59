package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
)

func cleanRun(cfg *CleanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Clean.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Field == "" {
		return fmt.Errorf("%w: clean needs -f field", cli.ErrUsage)
	}
	for _, file := range orStdin(args) {
		if err := cleanOne(cfg, cc, file); err != nil {
			return fmt.Errorf("error cleaning %s: %w", file, err)
		}
	}
	return nil
}

func cleanOne(cfg *CleanConfig, cc *cli.Context, file string) error {
	v, err := readDoc(file)
	if err != nil {
		return err
	}
	cleaned, stats, cerr := ir.CleanNaN(v, cfg.Field)
	if cerr != nil {
		return cerr
	}
	if cfg.Stats {
		fmt.Fprintf(os.Stderr, "%s: %d entries, %d kept, %d removed\n",
			file, stats.Original, stats.Cleaned, stats.Removed)
	}
	return encode.Encode(cleaned, cc.Out, cfg.encCfg(cc.Out))
}
