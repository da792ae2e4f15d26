package main

import (
	"fmt"
	"io"
	"runtime/debug"
)

func version(w io.Writer) error {
	v := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		v = info.Main.Version
	}
	_, err := fmt.Fprintln(w, "fibwalk", v)
	return err
}
