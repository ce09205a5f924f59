package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/validate"
)

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range orStdin(args) {
		d, err := readBytes(file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		if err := validate.Validate(d); err != nil {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d invalid document(s)", bad)
	}
	return nil
}
