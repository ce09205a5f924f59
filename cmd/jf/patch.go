package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/parse"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch needs a patch argument", cli.ErrUsage)
	}
	pd := []byte(args[0])
	if cfg.File {
		pd, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %s: %w", args[0], err)
		}
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("bad patch: %w", err)
	}
	for _, file := range orStdin(args[1:]) {
		if err := patchOne(cfg, cc, p, file); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
	}
	return nil
}

func patchOne(cfg *PatchConfig, cc *cli.Context, p jsonpatch.Patch, file string) error {
	v, err := readDoc(file)
	if err != nil {
		return err
	}
	// normalize through the encoder so the patch sees plain JSON
	doc, err := encode.String(v, encode.Compact())
	if err != nil {
		return err
	}
	out, err := p.Apply([]byte(doc))
	if err != nil {
		return err
	}
	res, err := parse.Parse(out)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encCfg(cc.Out))
}
