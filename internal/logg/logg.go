// Package logg - leveled logging for the bigcalc CLI
package logg

import (
	"io"
	"log"
	"os"
)

var (
	Info, Warn, Error, Debug *log.Logger
)

func init() {
	Setup(os.Stderr, false)
}

// Setup points every level at w. Debug output is discarded unless verbose.
func Setup(w io.Writer, verbose bool) {
	Info = log.New(w, "bigcalc: ", 0)
	Warn = log.New(w, "bigcalc: warning: ", 0)
	Error = log.New(w, "bigcalc: error: ", 0)
	debugOut := io.Discard
	if verbose {
		debugOut = w
	}
	Debug = log.New(debugOut, "bigcalc: debug: ", log.Ltime|log.Lmicroseconds)
}
