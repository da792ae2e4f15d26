package main

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func dump(arg []string, stdout, stderr io.Writer) error {
	var lf loadFlags

	dflag := flag.NewFlagSet("dump", flag.ContinueOnError)
	lf.register(dflag)
	dflag.Usage = func() {
		fmt.Println("Usage: fibwalk dump [options] [packages]")
		fmt.Println("Options:")
		dflag.PrintDefaults()
	}
	if err := dflag.Parse(arg); err != nil {
		return err
	}

	units, err := lf.load(context.Background(), stderr, dflag.Args())
	if err != nil {
		return err
	}
	for _, u := range units {
		if err := u.Dump(stdout); err != nil {
			return err
		}
	}
	return nil
}
