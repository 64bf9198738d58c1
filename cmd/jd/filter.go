package main

import (
	"fmt"
	"io"

	"github.com/jsondom/jsondom"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := filterArg(cfg, cc.Out, prg, arg); err != nil {
			return err
		}
	}
	return nil
}

// filterArg keeps the elements of a top-level array for which the compiled
// expression holds. Each element is exported and bound as 'el'; object
// elements additionally expose their fields directly.
func filterArg(cfg *FilterConfig, w io.Writer, prg *vm.Program, arg string) error {
	data, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	v, err := jsondom.ParseValue(data, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if !v.Ref().IsArray() {
		return fmt.Errorf("%s: filter requires a top-level array", arg)
	}
	out := jsondom.NewValue()
	res := out.Ref().Array()
	for i, el := range v.Ref().Array().All() {
		keep, err := evalPred(prg, el)
		if err != nil {
			return fmt.Errorf("error evaluating on %s[%d]: %w", arg, i, err)
		}
		if keep {
			res.Append(el)
		}
	}
	if err := out.Ref().Encode(w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result for %s: %w", arg, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func evalPred(prg *vm.Program, el jsondom.ValueRef) (bool, error) {
	exported := jsondom.Export(el)
	env := map[string]any{"el": exported}
	if m, ok := exported.(map[string]any); ok {
		for k, val := range m {
			if k == "el" {
				continue
			}
			env[k] = val
		}
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression yielded %T, not a boolean", res)
	}
	return b, nil
}
