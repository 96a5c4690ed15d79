package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Version is set at link time with -ldflags "-X main.Version=x.y.z".
var Version = "1.0.0"

func progname() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func version(w io.Writer) {
	fmt.Fprintf(w, "## Version %s\n", Version)
}

func readme(w io.Writer, name string) {
	fmt.Fprintf(w, "# %s\n\n", name)
	version(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copies the files on the command line to stdout, prepending a C style #line directive to each file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "## Command Line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```")
	usage(w)
	fmt.Fprintln(w, "```")
}

func usage(w io.Writer) {
	fmt.Fprint(w, `
NAME
	ppc - pre process cat

SYNOPSIS
	ppc [-o file] [file ...]

DESCRIPTION
	Ppc writes the contents of each named file to stdout, or to
	the -o file, preceded by a C style line directive:

	#line 1 "file"

	A newline is inserted before the directive if the previous
	file did not end in one. Ppc stops at the first file it
	cannot open, read or write.

	-h, --help     display this help and exit
	    --version  display version and exit
	    --license  display license and exit
	    --readme   display readme and exit
	-o, --output   output to file
	-v, --verbose  trace each file on stderr

EXAMPLE
	ppc -o all.c a.c b.c && cc -c all.c

BUGS
	File names are not escaped inside the directive.
`)
}

func license(w io.Writer) {
	fmt.Fprint(w, `MIT License

Copyright (c) 2025 Tristan Styles

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`)
}
