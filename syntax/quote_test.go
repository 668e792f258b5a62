// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestQuote(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		str  string
		want string
		ok   bool
	}{
		{"", `""`, true},
		{"foo", "foo", true},
		{"foo/bar.txt", "foo/bar.txt", true},
		{"a b", `"a b"`, true},
		{"tab\there", "\"tab\there\"", true},
		{"x2>y", `"x2>y"`, true},
		{"2>", `"2>"`, true},
		{"2x", "2x", true},
		{";", `";"`, true},
		{"a&&b", `"a&&b"`, true},
		{"(sub)", `"(sub)"`, true},
		{`"`, "", false},
		{`it's "fine"`, "", false},
	}
	for _, test := range tests {
		got, ok := Quote(test.str)
		qt.Assert(t, got, qt.Equals, test.want)
		qt.Assert(t, ok, qt.Equals, test.ok)
		if !ok {
			continue
		}
		// the lexer reads back the same single word
		l := NewLexer(got, 0)
		l.Next()
		qt.Assert(t, l.Tok, qt.Equals, Word)
		qt.Assert(t, l.Val, qt.Equals, test.str)
		l.Next()
		qt.Assert(t, l.Tok, qt.Equals, EOF)
	}
}
