package main

import "fmt"

const usage = `Fibwalk reports the function declarations of Go packages.

Usage:

    fibwalk [command] [arguments]

The commands are:

    dump        print the syntax tree of packages
    funcs       list function declarations and their extents
    help        print usage information
    version     print version

Use "fibwalk help <command>" for more information about a command.
`

func help(arg []string) error {
	var cmd string
	if len(arg) > 0 {
		cmd = arg[0]
	}

	switch cmd {
	case Dump:
		return dump([]string{"-h"}, nil, nil)
	case Funcs:
		return funcs([]string{"-h"}, nil, nil)
	case Help, "", "-h", "--help":
		fmt.Print(usage)
		return nil
	case Version:
		fmt.Println("Usage: fibwalk version")
		return nil
	default:
		return fmt.Errorf("help: invalid fibwalk command: %v", cmd)
	}
}
