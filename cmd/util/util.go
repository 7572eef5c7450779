// Package util provides the helpers shared by every command: assertion
// style error handling, the common flag registry and progress output.
package util

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func init() {
	log.SetFlags(0)
}

// Warnf writes a message to stderr.
func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Verbosef is Warnf gated on the verbose flag.
func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		log.Printf(format, v...)
	}
}

// Warning reports a non-fatal error to stderr and says whether there was
// one. Commands use it for skip-and-continue handling of bad inputs.
func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Warnf("WARNING: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Warnf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
		return true
	}
	return false
}

// Fatalf writes a message to stderr and exits with a failing status.
func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert exits the command if err is not nil. The optional arguments
// form a printf-style prefix describing what was being attempted.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

// AssertNArg shows the usage message and exits unless exactly n
// positional arguments were given.
func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

// AssertIsDir exits the command unless path names a directory.
func AssertIsDir(path string) {
	info, err := os.Stat(path)
	Assert(err, "Directory '%s' is not accessible", path)
	if !info.IsDir() {
		Fatalf("'%s' is not a directory.", path)
	}
}

// OpenFile opens a file for reading, exiting the command on failure.
func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

// CreateFile creates (or truncates) a file, exiting the command on
// failure.
func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}
