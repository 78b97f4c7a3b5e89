package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Edit     bool
	Merge    bool
	Rule     bool
	Ref      bool
	Finalize bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("JEDIT_DEBUG_EDIT")
	d.Merge = boolEnv("JEDIT_DEBUG_MERGE")
	d.Rule = boolEnv("JEDIT_DEBUG_RULE")
	d.Ref = boolEnv("JEDIT_DEBUG_REF")
	d.Finalize = boolEnv("JEDIT_DEBUG_FINAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Merge() bool {
	return d.Merge
}
func Rule() bool {
	return d.Rule
}
func Ref() bool {
	return d.Ref
}
func Finalize() bool {
	return d.Finalize
}
