package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fieldsense/go-json/encode"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly two arguments", cli.ErrUsage)
	}
	a, err := canonicalText(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	b, err := canonicalText(args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
			default:
				fmt.Fprint(cc.Out, d.Text)
			}
		}
	}
	return fmt.Errorf("documents differ")
}

// canonicalText renders a document so two trees with the same content
// diff clean: sorted keys, fixed indentation, no color.
func canonicalText(file string) (string, error) {
	v, err := readDoc(file)
	if err != nil {
		return "", err
	}
	return encode.String(v, encode.Pretty())
}
