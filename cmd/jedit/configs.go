package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jsonedit/go-jsonedit/encode"
	"github.com/jsonedit/go-jsonedit/rules"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='output without whitespace'"`

	Vars rules.Vars
	Refs string `cli:"name=r aliases=refs desc='reference map file'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Compact {
		res = append(res, encode.Compact())
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) varOpt(cc *cli.Context, a string) (any, error) {
	k, v, ok := cutVar(a)
	if !ok {
		return nil, fmt.Errorf("%w: -V expects name=value, got %q", cli.ErrUsage, a)
	}
	if cfg.Vars == nil {
		cfg.Vars = rules.Vars{}
	}
	cfg.Vars[k] = v
	return nil, nil
}

func cutVar(a string) (string, string, bool) {
	for i := range len(a) {
		if a[i] == '=' {
			return a[:i], a[i+1:], i > 0
		}
	}
	return "", "", false
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Replace    bool `cli:"name=replace desc='replace colliding arrays instead of appending'"`
	NullDelete bool `cli:"name=null-delete desc='treat null source values as deletions'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig

	PatchFile string `cli:"name=p aliases=patch desc='RFC 6902 patch file'"`

	Patch *cli.Command
}
