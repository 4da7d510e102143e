package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitWriter io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf writes a formatted message to stderr and terminates with status 1.
// Tool entrypoints use it for unrecoverable startup failures.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, format+"\n", args...)
	exitFunc(1)
}
