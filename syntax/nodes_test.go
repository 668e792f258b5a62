// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func walkNames(cmd *Command, descend bool) []string {
	var names []string
	Walk(cmd, func(c *Command) bool {
		if c.Subshell != nil {
			names = append(names, "()")
			return descend
		}
		names = append(names, c.Args[0])
		return true
	})
	return names
}

func TestWalk(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	cmd, err := NewParser().Parse("a ; (b | (c)) && d ; (e) ; f", "")
	c.Assert(err, qt.IsNil)

	c.Assert(walkNames(cmd, true), qt.DeepEquals,
		[]string{"a", "()", "b", "()", "c", "d", "()", "e", "f"})
	// returning false skips the subshell, not the rest of the chain
	c.Assert(walkNames(cmd, false), qt.DeepEquals,
		[]string{"a", "()", "d", "()", "f"})
}

func TestCheckReportsFirstError(t *testing.T) {
	t.Parallel()
	cmd := &Command{
		Subshell: &Command{Args: []string{"a"}, Op: Piped},
		Op:       Sequence,
		Next:     &Command{},
	}
	qt.Assert(t, Check(cmd), qt.ErrorMatches, `command line ends with \|`)
}
