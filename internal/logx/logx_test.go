package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written without verbose: %q", out)
	}
	if out != "level=info msg=shown\n" {
		t.Errorf("got %q", out)
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.WithField("pkg", "compiledb").Debugf("loaded %d files", 1)

	if got, want := buf.String(), "level=debug msg=\"loaded 1 files\" pkg=compiledb\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
