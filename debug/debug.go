package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Coerce bool
	Reject bool
	Keys   bool
	Patch  bool
	Schema bool
}

var d *debug

func init() {
	d = &debug{}
	d.Coerce = boolEnv("BT_DEBUG_COERCE")
	d.Reject = boolEnv("BT_DEBUG_REJECT")
	d.Keys = boolEnv("BT_DEBUG_KEYS")
	d.Patch = boolEnv("BT_DEBUG_PATCH")
	d.Schema = boolEnv("BT_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Coerce() bool {
	return d.Coerce
}
func Reject() bool {
	return d.Reject
}
func Keys() bool {
	return d.Keys
}
func Patch() bool {
	return d.Patch
}
func Schema() bool {
	return d.Schema
}
