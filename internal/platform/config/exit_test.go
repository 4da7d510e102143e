package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevWriter, prevExit := exitWriter, exitFunc
	exitWriter = &buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitWriter, exitFunc = prevWriter, prevExit
	})

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: something broke\n" {
		t.Fatalf("output = %q, want %q", got, "fatal: something broke\n")
	}
}
