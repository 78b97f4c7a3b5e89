package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	jsonedit "github.com/jsonedit/go-jsonedit"
	"github.com/jsonedit/go-jsonedit/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch expects -p patchfile", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: patch expects exactly one file", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	doc, err := readDoc(args[0])
	if err != nil {
		return err
	}
	out, err := jsonedit.ApplyPatch(doc, patchData)
	if err != nil {
		return err
	}
	return encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...)
}
