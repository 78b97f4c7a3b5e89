package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jsonedit "github.com/jsonedit/go-jsonedit"
	"github.com/jsonedit/go-jsonedit/encode"
	"github.com/jsonedit/go-jsonedit/ir"
	"github.com/jsonedit/go-jsonedit/rules"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge expects at least one file", cli.ErrUsage)
	}
	var extra []jsonedit.Option
	if cfg.Replace {
		extra = append(extra, jsonedit.WithArrayMerge(rules.ArrayReplace))
	}
	if cfg.NullDelete {
		extra = append(extra, jsonedit.WithNullAsDelete(true))
	}
	ed, err := cfg.editor(extra...)
	if err != nil {
		return err
	}
	srcs := make([]*ir.Node, 0, len(args))
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		if doc.Type != ir.ObjectType {
			return fmt.Errorf("%s: merge sources must be objects, got %s", arg, doc.Type)
		}
		srcs = append(srcs, doc)
	}
	out, err := ed.MergeNew(nil, srcs...)
	if err != nil {
		return err
	}
	return encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...)
}
