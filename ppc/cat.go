package main

import (
	"io"
	"os"

	"github.com/as/io/count"
	"github.com/as/log"
)

// BlockSize is the size of a single read from an input file.
const BlockSize = 8192

// Cat writes files to an output, each preceded by a #line directive
// naming it. The zero value is not usable; use NewCat.
type Cat struct {
	out   io.Writer
	eofnl bool // last byte written to out was a newline
	buf   [BlockSize]byte

	// Open opens the named input. It defaults to os.Open.
	Open func(name string) (io.ReadCloser, error)
}

func NewCat(out io.Writer) *Cat {
	return &Cat{out: out, eofnl: true, Open: open}
}

func open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Files writes each named file in order. It stops at the first error,
// leaving already-written output in place.
func (c *Cat) Files(names ...string) error {
	for _, name := range names {
		if err := c.File(name); err != nil {
			return err
		}
	}
	return nil
}

// File writes one directive and the contents of the named file.
func (c *Cat) File(name string) error {
	in, err := c.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	if !c.eofnl {
		if _, err := io.WriteString(c.out, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(c.out, Marker(name)); err != nil {
		return err
	}
	c.eofnl = false

	lines := count.NewWriter("\n")
	n, err := c.copy(io.MultiWriter(c.out, lines), in)
	log.Debug.Add("file", name, "bytes", n, "lines", lines.Seen()).F("copied")
	return err
}

// copy moves in to w one block at a time, tracking whether the last
// byte seen was a newline.
func (c *Cat) copy(w io.Writer, in io.Reader) (n int64, err error) {
	for {
		nr, rerr := in.Read(c.buf[:])
		if nr > 0 {
			c.eofnl = c.buf[nr-1] == '\n'
			nw, werr := w.Write(c.buf[:nr])
			n += int64(nw)
			if werr != nil {
				return n, werr
			}
			if nw != nr {
				return n, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return n, nil
		}
		if rerr != nil {
			return n, rerr
		}
	}
}

// Marker returns the #line directive for name. The name is written as
// given, without escaping.
func Marker(name string) string {
	return "#line 1 \"" + name + "\"\n"
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// create opens the output sink. An empty name is stdout, which is left
// open for the process to close.
func create(name string) (io.WriteCloser, error) {
	if name == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(name)
}

func sinkname(name string) string {
	if name == "" {
		return "/dev/stdout"
	}
	return name
}
