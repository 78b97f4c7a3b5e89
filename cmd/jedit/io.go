package main

import (
	"fmt"
	"io"
	"os"

	jsonedit "github.com/jsonedit/go-jsonedit"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/parse"
	"github.com/jsonedit/go-jsonedit/refmap"
	"github.com/jsonedit/go-jsonedit/rules"
)

func readDoc(path string) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	if path == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// editor builds the editor from the main config: -V variables and the
// -r reference map file.
func (cfg *MainConfig) editor(extra ...jsonedit.Option) (*jsonedit.Editor, error) {
	var opts []jsonedit.Option
	if cfg.Vars != nil {
		opts = append(opts, jsonedit.WithVars(cfg.Vars))
	}
	if cfg.Refs != "" {
		refs, err := cfg.loadRefs()
		if err != nil {
			return nil, err
		}
		opts = append(opts, jsonedit.WithRefs(refs))
	}
	return jsonedit.New(append(opts, extra...)...)
}

func (cfg *MainConfig) loadRefs() (rules.RefMap, error) {
	obj, err := readDoc(cfg.Refs)
	if err != nil {
		return nil, err
	}
	formatter, err := jsonedit.New(jsonedit.WithVars(cfg.Vars))
	if err != nil {
		return nil, err
	}
	m, err := refmap.NewFromObject(obj, nil, formatter, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Refs, err)
	}
	return m, nil
}
