package main

import (
	"github.com/scott-cotton/cli"

	"github.com/jsonedit/go-jsonedit/encode"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ed, err := cfg.editor()
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(cc.Out)
	for _, arg := range args {
		doc, err := readDoc(arg)
		if err != nil {
			return err
		}
		out, err := ed.Clone(doc, nil)
		if err != nil {
			return err
		}
		if err := encode.Encode(out, cc.Out, encOpts...); err != nil {
			return err
		}
	}
	return nil
}
