package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/fieldsense/go-json/encode"
	"github.com/fieldsense/go-json/ir"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: eval needs an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range orStdin(args[1:]) {
		if err := evalOne(cfg, cc, src, file); err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
	}
	return nil
}

func evalOne(cfg *EvalConfig, cc *cli.Context, src, file string) error {
	v, err := readDoc(file)
	if err != nil {
		return err
	}
	env := map[string]any{"doc": ir.ToAny(v)}
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return fmt.Errorf("bad expression: %w", err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return err
	}
	res, cerr := ir.FromAny(out)
	if cerr != nil {
		return cerr
	}
	ec := cfg.encCfg(cc.Out)
	if err := encode.Encode(res, cc.Out, ec); err != nil {
		return err
	}
	if ec.LineEnd == "" {
		fmt.Fprintln(cc.Out)
	}
	return nil
}
