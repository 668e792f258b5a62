// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func FuzzParsePrint(f *testing.F) {
	for _, test := range parseTests {
		f.Add(test.in)
	}
	for _, test := range errorTests {
		f.Add(test.in)
	}
	f.Fuzz(func(t *testing.T, src string) {
		p := NewParser(MaxDepth(20))
		cmd, err := p.Parse(src, "")
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("not a *ParseError: %#v", err)
			}
			if p.live != 0 {
				t.Fatalf("%d commands still alive after a failed parse", p.live)
			}
			return
		}
		if err := Check(cmd); err != nil {
			t.Fatalf("parser returned a malformed chain: %v", err)
		}
		printer := NewPrinter()
		if err := printer.Print(io.Discard, cmd); err != nil {
			t.Fatal(err)
		}
		var sb strings.Builder
		if err := printer.PrintSource(&sb, cmd); errors.Is(err, ErrLineTooLong) {
			return
		} else if err != nil {
			t.Fatal(err)
		}
		src = strings.TrimSuffix(sb.String(), "\n")
		cmd2, err := NewParser(MaxDepth(20)).Parse(src, "")
		if err != nil {
			t.Fatalf("reparsing %q: %v", src, err)
		}
		if diff := cmp.Diff(cmd, cmd2, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("reparsed chain differs (-want +got):\n%s", diff)
		}
	})
}
