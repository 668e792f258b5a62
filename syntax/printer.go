// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// PrinterOption is a function which can be passed to NewPrinter
// to alter its behaviour. To apply option to existing Printer
// call it directly, for example syntax.Indent(4)(printer).
type PrinterOption func(*Printer)

// Indent sets the number of spaces used to indent each subshell level
// in the bracket form written by Print. The default is 2.
func Indent(spaces uint) PrinterOption {
	return func(p *Printer) { p.indent = int(spaces) }
}

// LineLimit sets the maximum length in bytes of the line written by
// PrintSource, which should match the MaxLineLen of the parser reading
// it back. Zero or less means DefaultMaxLineLen.
func LineLimit(n int) PrinterOption {
	return func(p *Printer) { p.lineLimit = orDefault(n, DefaultMaxLineLen) }
}

// Printer holds the internal state of the printing mechanism of a
// command chain. A Printer may be used concurrently.
type Printer struct {
	indent    int
	lineLimit int
}

// NewPrinter allocates a new Printer and applies any number of options.
func NewPrinter(options ...PrinterOption) *Printer {
	p := &Printer{indent: 2, lineLimit: DefaultMaxLineLen}
	for _, opt := range options {
		opt(p)
	}
	return p
}

var writerFree = sync.Pool{
	New: func() interface{} { return bufio.NewWriter(nil) },
}

var bufferFree = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func (p *Printer) write(w io.Writer, cmd *Command, fn func(*bufio.Writer) error) error {
	if err := Check(cmd); err != nil {
		return err
	}
	bw := writerFree.Get().(*bufio.Writer)
	bw.Reset(w)
	err := fn(bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	bw.Reset(nil)
	writerFree.Put(bw)
	return err
}

// Print writes a command chain in a bracketed form meant for
// debugging and tests, one command per line:
//
//	[2 args "echo" "foo" >out] &&
//	[0 args
//	  [1 args "ls"] .
//	] .
//
// Each command lists its arguments and redirections followed by the
// symbol of its control operator, with "." marking the end.
func (p *Printer) Print(w io.Writer, cmd *Command) error {
	return p.write(w, cmd, func(bw *bufio.Writer) error {
		p.brackets(bw, cmd, 0)
		return nil
	})
}

func (p *Printer) pad(bw *bufio.Writer, n int) {
	for i := 0; i < n; i++ {
		bw.WriteByte(' ')
	}
}

func (p *Printer) brackets(bw *bufio.Writer, cmd *Command, level int) {
	for ; cmd != nil; cmd = cmd.Next {
		p.pad(bw, level)
		bw.WriteByte('[')
		bw.WriteString(strconv.Itoa(len(cmd.Args)))
		bw.WriteString(" args")
		for _, arg := range cmd.Args {
			bw.WriteString(` "`)
			bw.WriteString(arg)
			bw.WriteByte('"')
		}
		for slot, name := range cmd.Redirs {
			if name != "" {
				bw.WriteByte(' ')
				bw.WriteString(RedirSlot(slot).String())
				bw.WriteString(name)
			}
		}
		if cmd.Subshell != nil {
			bw.WriteByte('\n')
			p.brackets(bw, cmd.Subshell, level+p.indent)
			p.pad(bw, level)
		}
		bw.WriteString("] ")
		bw.WriteString(cmd.Op.String())
		bw.WriteByte('\n')
	}
}

// PrintSource writes a command chain as a single command line
// followed by a newline. Parsing the output gives back an equal chain.
// It fails if an argument or file name contains a double quote, or if
// the line would be longer than the printer's LineLimit; the error then
// wraps ErrLineTooLong.
func (p *Printer) PrintSource(w io.Writer, cmd *Command) error {
	if err := Check(cmd); err != nil {
		return err
	}
	buf := bufferFree.Get().(*bytes.Buffer)
	defer bufferFree.Put(buf)
	buf.Reset()
	if err := p.source(buf, cmd); err != nil {
		return err
	}
	if buf.Len() > p.lineLimit {
		return fmt.Errorf("%w: source form is longer than %d bytes",
			ErrLineTooLong, p.lineLimit)
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func (p *Printer) word(buf *bytes.Buffer, s string) error {
	q, ok := Quote(s)
	if !ok {
		return fmt.Errorf("cannot quote %q: it contains a double quote", s)
	}
	buf.WriteString(q)
	return nil
}

func (p *Printer) source(buf *bytes.Buffer, cmd *Command) error {
	for ; cmd != nil; cmd = cmd.Next {
		if cmd.Subshell != nil {
			buf.WriteString("( ")
			if err := p.source(buf, cmd.Subshell); err != nil {
				return err
			}
			buf.WriteString(" )")
		}
		for i, arg := range cmd.Args {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if err := p.word(buf, arg); err != nil {
				return err
			}
		}
		for slot, name := range cmd.Redirs {
			if name == "" {
				continue
			}
			buf.WriteByte(' ')
			buf.WriteString(RedirSlot(slot).String())
			if err := p.word(buf, name); err != nil {
				return err
			}
		}
		if cmd.Op != End {
			buf.WriteByte(' ')
			buf.WriteString(cmd.Op.String())
			if cmd.Next != nil {
				buf.WriteByte(' ')
			}
		}
	}
	return nil
}
