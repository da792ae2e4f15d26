package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/traefik/fibfixture/astwalk"
)

func funcs(arg []string, stdout, stderr io.Writer) error {
	var lf loadFlags
	var file string
	var format string

	fflag := flag.NewFlagSet("funcs", flag.ContinueOnError)
	lf.register(fflag)
	fflag.StringVar(&file, "file", "", "only report declarations from the file with this base name")
	fflag.StringVar(&format, "format", string(astwalk.FormatText), "output format: text or yaml")
	fflag.Usage = func() {
		fmt.Println("Usage: fibwalk funcs [options] [packages]")
		fmt.Println("Options:")
		fflag.PrintDefaults()
	}
	if err := fflag.Parse(arg); err != nil {
		return err
	}

	f, err := astwalk.ParseFormat(format)
	if err != nil {
		return err
	}

	units, err := lf.load(context.Background(), stderr, fflag.Args())
	if err != nil {
		return err
	}

	reports := make([]astwalk.Report, 0, len(units))
	for _, u := range units {
		reports = append(reports, astwalk.NewReport(u, file))
	}
	return astwalk.WriteReport(stdout, f, reports...)
}
