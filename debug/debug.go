// Package debug gates diagnostic logging behind environment variables.
// Set JF_DEBUG_PARSE, JF_DEBUG_ENCODE or JF_DEBUG_IO to a truthy value
// to enable the corresponding traces on stderr.
package debug

import (
	"os"
	"strconv"
)

// The gates read the environment on every call so tests can flip them
// with t.Setenv.

func Parse() bool {
	return boolEnv("JF_DEBUG_PARSE")
}
func Encode() bool {
	return boolEnv("JF_DEBUG_ENCODE")
}
func IO() bool {
	return boolEnv("JF_DEBUG_IO")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}
