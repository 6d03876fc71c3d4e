package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Nav     bool
	Set     bool
	Delete  bool
	Flatten bool
	Dict    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Nav = boolEnv("NESTPATH_DEBUG_NAV")
	d.Set = boolEnv("NESTPATH_DEBUG_SET")
	d.Delete = boolEnv("NESTPATH_DEBUG_DELETE")
	d.Flatten = boolEnv("NESTPATH_DEBUG_FLATTEN")
	d.Dict = boolEnv("NESTPATH_DEBUG_DICT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Nav() bool {
	return d.Nav
}
func Set() bool {
	return d.Set
}
func Delete() bool {
	return d.Delete
}
func Flatten() bool {
	return d.Flatten
}
func Dict() bool {
	return d.Dict
}
