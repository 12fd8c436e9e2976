// Package debug holds environment-driven debug switches for tracing
// comparisons and tokenization.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Cmp    bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Cmp = boolEnv("HUMANESORT_DEBUG_CMP")
	d.Tokens = boolEnv("HUMANESORT_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Cmp() bool {
	return d.Cmp
}
func Tokens() bool {
	return d.Tokens
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
