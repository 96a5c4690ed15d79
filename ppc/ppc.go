// Copyright 2025 Tristan Styles. All rights reserved. The program is governed
// by an MIT license.
//
// Ppc copies files to stdout, prefixing each with a C #line directive.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/as/log"
	"github.com/as/mute"
)

const Prefix = "ppc: "

var (
	stdout = io.Writer(os.Stdout)
	stderr = io.Writer(os.Stderr)
)

type invocation struct {
	h       bool
	version bool
	license bool
	readme  bool
	v       bool
	out     string
	files   []string
}

// options maps every accepted spelling to its flag name. Nothing else
// beginning with '-' is an option.
var options = map[string]string{
	"-h":        "h",
	"--help":    "h",
	"--version": "version",
	"--license": "license",
	"--readme":  "readme",
	"-v":        "v",
	"--verbose": "v",
	"-o":        "o",
	"--output":  "o",
}

// parse reads options up to the first argument not beginning with '-'.
// The first informational option ends parsing.
func parse(a []string) (*invocation, error) {
	var args invocation
	i := 0
	for ; i < len(a) && strings.HasPrefix(a[i], "-"); i++ {
		name, ok := options[a[i]]
		if !ok {
			return nil, fmt.Errorf("invalid option: %s", a[i])
		}
		switch name {
		case "h":
			return &invocation{h: true}, nil
		case "version":
			return &invocation{version: true}, nil
		case "license":
			return &invocation{license: true}, nil
		case "readme":
			return &invocation{readme: true}, nil
		case "o":
			if i+1 == len(a) {
				return nil, fmt.Errorf("option requires an argument: %s", a[i])
			}
			i++
		}
	}

	f := flag.NewFlagSet("main", flag.ContinueOnError)
	f.BoolVar(&args.v, "v", false, "")
	f.BoolVar(&args.v, "verbose", false, "")
	f.StringVar(&args.out, "o", "", "")
	f.StringVar(&args.out, "output", "", "")
	if err := mute.Parse(f, a[:i]); err != nil {
		return nil, fmt.Errorf("invalid option: %w", err)
	}
	args.files = a[i:]
	return &args, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(a []string) int {
	args, err := parse(a)
	if err != nil {
		printerr(err)
		usage(stderr)
		return 1
	}
	switch {
	case args.h:
		usage(stdout)
		return 0
	case args.version:
		version(stdout)
		return 0
	case args.license:
		license(stdout)
		return 0
	case args.readme:
		readme(stdout, progname())
		return 0
	}

	log.Service = "ppc"
	log.DebugOn = args.v
	log.SetOutput(stderr)

	if err := cat(args.out, expand(args.files)...); err != nil {
		printerr(err)
		return 1
	}
	return 0
}

// cat writes each named file to the output sink named by out, or to
// stdout if out is empty.
func cat(out string, files ...string) (err error) {
	w, err := create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	log.Debug.Add("output", sinkname(out), "files", len(files)).F("open")
	return NewCat(w).Files(files...)
}

func printerr(v ...interface{}) {
	fmt.Fprint(stderr, Prefix)
	fmt.Fprintln(stderr, v...)
}
