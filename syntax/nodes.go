// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "fmt"

// RedirSlot indexes the redirection targets of a [Command].
type RedirSlot int

const (
	Stdin RedirSlot = iota
	Stdout
	Stderr
)

func (s RedirSlot) String() string {
	switch s {
	case Stdin:
		return "<"
	case Stdout:
		return ">"
	case Stderr:
		return "2>"
	}
	return fmt.Sprintf("RedirSlot(%d)", int(s))
}

func redirSlot(t Token) RedirSlot {
	switch t {
	case RdrOut:
		return Stdout
	case RdrErr:
		return Stderr
	}
	return Stdin
}

// Command is a single stage of a command line, such as "foo a b >out".
//
// Commands form a singly linked chain through Next. Each command owns
// its Next sibling and its Subshell.
type Command struct {
	// Args holds the words of the command, name first. None is empty.
	Args []string

	// Redirs holds the redirection targets indexed by Stdin, Stdout
	// and Stderr. An empty string means no redirection.
	Redirs [3]string

	// Subshell is the command line inside parentheses. A command with
	// a subshell has no Args nor Redirs.
	Subshell *Command

	// Op is the operator following the command. If Next is nil, Op
	// is one of End, Sequence or Async.
	Op ControlOp

	Next *Command
}

// Redir returns the redirection target for a slot, and whether there
// is one.
func (c *Command) Redir(s RedirSlot) (string, bool) {
	return c.Redirs[s], c.Redirs[s] != ""
}

func (c *Command) hasRedirs() bool {
	return c.Redirs != [3]string{}
}

// Len returns the number of commands in the chain starting at c, not
// counting subshells.
func (c *Command) Len() int {
	n := 0
	for ; c != nil; c = c.Next {
		n++
	}
	return n
}

// Walk traverses a command chain in depth-first order: It starts by
// calling f(cmd); cmd must not be nil. If f returns true, Walk visits
// the subshell of cmd, if any. The next command in the chain is
// visited either way.
func Walk(cmd *Command, f func(*Command) bool) {
	for ; cmd != nil; cmd = cmd.Next {
		if f(cmd) && cmd.Subshell != nil {
			Walk(cmd.Subshell, f)
		}
	}
}

func hasEmptyWord(c *Command) bool {
	for _, arg := range c.Args {
		if arg == "" {
			return true
		}
	}
	return false
}

// Check reports whether a command chain is well formed, as any chain
// returned by a [Parser] is. It is useful for chains built by hand.
func Check(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("empty command chain")
	}
	var err error
	Walk(cmd, func(c *Command) bool {
		if err != nil {
			return false
		}
		switch {
		case c.Subshell != nil && (len(c.Args) > 0 || c.hasRedirs()):
			err = fmt.Errorf("command with a subshell has words or redirections")
		case c.Subshell == nil && len(c.Args) == 0:
			err = fmt.Errorf("command has neither words nor a subshell")
		case hasEmptyWord(c):
			err = fmt.Errorf("command has an empty word")
		case c.Next == nil && !c.Op.terminal():
			err = fmt.Errorf("command line ends with %s", c.Op)
		case c.Op < End || c.Op > OrIf:
			err = fmt.Errorf("invalid control operator %d", int(c.Op))
		}
		return err == nil
	})
	return err
}
