package main

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func buildFib(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "fib")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	build := exec.Command("go", "build", "-o", bin, ".")
	out, err := build.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build fib command: %v: %s", err, out)
	}
	return bin
}

func TestFibCmd(t *testing.T) {
	bin := buildFib(t)

	var first string
	for i := 0; i < 3; i++ {
		cmd := exec.Command(bin)
		var outBuf, errBuf bytes.Buffer
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf

		if err := cmd.Run(); err != nil {
			t.Fatalf("error running fib command: %v: %s", err, &errBuf)
		}
		if code := cmd.ProcessState.ExitCode(); code != 0 {
			t.Fatalf("got exit code %d, want 0", code)
		}
		if errBuf.Len() != 0 {
			t.Errorf("unexpected stderr: %q", &errBuf)
		}

		got := outBuf.String()
		if got != "3\n" {
			t.Fatalf("got %q, want %q", got, "3\n")
		}
		if i == 0 {
			first = got
		} else if got != first {
			t.Errorf("run %d: got %q, first run printed %q", i, got, first)
		}
	}
}
