package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff   bool
	Match  bool
	Eval   bool
	Config bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("VALTREE_DEBUG_DIFF")
	d.Match = boolEnv("VALTREE_DEBUG_MATCH")
	d.Eval = boolEnv("VALTREE_DEBUG_EVAL")
	d.Config = boolEnv("VALTREE_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}
func Config() bool {
	return d.Config
}
