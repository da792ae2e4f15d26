/*
Fibwalk loads Go packages and reports their function declarations.

It is the harness run against the fib fixture: packages are resolved by
the go command from a directory, parsed, and their syntax trees walked.

Usage:

	fibwalk [command] [arguments]

The commands are:

	dump        print the syntax tree of packages
	funcs       list function declarations and their extents
	help        print usage information
	version     print version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Fibwalk commands.
const (
	Dump    = "dump"
	Funcs   = "funcs"
	Help    = "help"
	Version = "version"
)

func main() {
	var cmd string
	var err error
	var exitCode int

	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case Dump:
		err = dump(os.Args[2:], os.Stdout, os.Stderr)
	case Funcs:
		err = funcs(os.Args[2:], os.Stdout, os.Stderr)
	case Help, "-h", "--help":
		err = help(os.Args[2:])
	case Version:
		err = version(os.Stdout)
	case "":
		fmt.Fprint(os.Stderr, usage)
		exitCode = 2
	default:
		fmt.Fprintf(os.Stderr, "fibwalk: unknown command %q\nRun 'fibwalk help' for usage.\n", cmd)
		exitCode = 2
	}

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}
	os.Exit(exitCode)
}
