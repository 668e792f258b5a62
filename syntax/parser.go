// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import (
	"errors"
	"fmt"
)

// Default limits of a [Parser].
const (
	DefaultMaxTokenLen = 1023
	DefaultMaxArgs     = 2048
	DefaultMaxLineLen  = 4096
	DefaultMaxDepth    = 100
)

// ParserOption is a function which can be passed to NewParser
// to alter its behaviour. To apply option to existing Parser
// call it directly, for example syntax.MaxArgs(16)(parser).
type ParserOption func(*Parser)

// MaxTokenLen sets the maximum length in bytes of a single word.
func MaxTokenLen(n int) ParserOption {
	return func(p *Parser) { p.maxTokenLen = orDefault(n, DefaultMaxTokenLen) }
}

// MaxArgs sets the maximum number of words in a single command.
func MaxArgs(n int) ParserOption {
	return func(p *Parser) { p.maxArgs = orDefault(n, DefaultMaxArgs) }
}

// MaxLineLen sets the maximum length in bytes of a command line.
func MaxLineLen(n int) ParserOption {
	return func(p *Parser) { p.maxLineLen = orDefault(n, DefaultMaxLineLen) }
}

// MaxDepth sets how deep subshells may be nested.
func MaxDepth(n int) ParserOption {
	return func(p *Parser) { p.maxDepth = orDefault(n, DefaultMaxDepth) }
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// Parser holds the internal state of the parsing mechanism of a
// command line. A Parser may be reused, but it is not safe for
// concurrent use.
type Parser struct {
	maxTokenLen int
	maxArgs     int
	maxLineLen  int
	maxDepth    int

	lx    Lexer
	name  string
	depth int

	// free holds released commands for reuse; live counts the commands
	// handed out since the last Reset and not released.
	free []*Command
	live int
}

// NewParser allocates a new Parser and applies any number of options.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{
		maxTokenLen: DefaultMaxTokenLen,
		maxArgs:     DefaultMaxArgs,
		maxLineLen:  DefaultMaxLineLen,
		maxDepth:    DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse parses a whole command line, with an optional name used in
// error messages. It returns the head of the command chain, or an
// error of type *ParseError. No partial chain is ever returned.
func (p *Parser) Parse(line, name string) (*Command, error) {
	if err := p.Reset(line, name); err != nil {
		return nil, err
	}
	return p.CommandLine(false)
}

// Reset prepares the parser to read a new line, for use with
// Command and CommandLine. It fails if the line is too long, leaving
// the parser over an empty line.
func (p *Parser) Reset(line, name string) error {
	p.lx.maxTokenLen = p.maxTokenLen
	p.name, p.depth, p.live = name, 0, 0
	if len(line) > p.maxLineLen {
		p.lx.Reset("")
		return p.posErr(p.maxLineLen, ErrLineTooLong,
			"line is longer than %d bytes", p.maxLineLen)
	}
	p.lx.Reset(line)
	return nil
}

// Lexer returns the lexer the parser reads its tokens from.
func (p *Parser) Lexer() *Lexer { return &p.lx }

// Kinds of parse errors, which can be matched with errors.Is on a
// *ParseError.
var (
	ErrTokenTooLong         = errors.New("token too long")
	ErrMissingRedirect      = errors.New("redirection without a file name")
	ErrUnexpectedCloseGroup = errors.New("unexpected )")
	ErrTooManyArgs          = errors.New("too many arguments")
	ErrNestingTooDeep       = errors.New("subshells nested too deep")
	ErrUnterminatedGroup    = errors.New("unterminated subshell")
	ErrEmptyCommand         = errors.New("empty command")
	ErrDanglingOperator     = errors.New("operator without a command after it")
	ErrSubshellMixed        = errors.New("subshell mixed with words or redirections")
	ErrLineTooLong          = errors.New("line too long")
)

// ParseError represents an error found when parsing a command line.
type ParseError struct {
	Filename string
	Offset   int   // byte offset into the line
	Kind     error // one of the Err* variables
	Text     string
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.Filename != "" {
		prefix = e.Filename + ":"
	}
	return fmt.Sprintf("%s%d: %s", prefix, e.Offset+1, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func (p *Parser) posErr(offset int, kind error, format string, a ...interface{}) error {
	return &ParseError{
		Filename: p.name,
		Offset:   offset,
		Kind:     kind,
		Text:     fmt.Sprintf(format, a...),
	}
}

func (p *Parser) tooLongErr() error {
	return p.posErr(p.lx.Offset, ErrTokenTooLong,
		"word is longer than %d bytes", p.maxTokenLen)
}

func (p *Parser) newCommand() *Command {
	p.live++
	if n := len(p.free); n > 0 {
		cmd := p.free[n-1]
		p.free = p.free[:n-1]
		return cmd
	}
	return &Command{}
}

// release gives back a command along with its subshell and every
// command after it.
func (p *Parser) release(cmd *Command) {
	for cmd != nil {
		next := cmd.Next
		p.release(cmd.Subshell)
		*cmd = Command{Args: cmd.Args[:0]}
		p.live--
		if len(p.free) < 64 {
			p.free = append(p.free, cmd)
		}
		cmd = next
	}
}

// Command parses a single command, stopping before the first token
// which does not belong to it. It returns nil and no error if the
// command is empty, such as when the next token is an operator.
func (p *Parser) Command() (*Command, error) {
	cmd := p.newCommand()
	fail := func(err error) (*Command, error) {
		p.release(cmd)
		return nil, err
	}
	for {
		p.lx.Next()
		switch tok := p.lx.Tok; tok {
		case Word:
			if p.lx.Val == "" {
				// an empty quoted word such as "" is no argument
				continue
			}
			if cmd.Subshell != nil {
				// "( foo ) bar"; reported by CommandLine
				p.lx.Unget()
				return cmd, nil
			}
			if len(cmd.Args) == p.maxArgs {
				return fail(p.posErr(p.lx.Offset, ErrTooManyArgs,
					"more than %d arguments", p.maxArgs))
			}
			cmd.Args = append(cmd.Args, p.lx.Val)
		case RdrIn, RdrOut, RdrErr:
			if cmd.Subshell != nil {
				return fail(p.posErr(p.lx.Offset, ErrSubshellMixed,
					"%s cannot follow a subshell", tok))
			}
			offset := p.lx.Offset
			p.lx.Next()
			switch {
			case p.lx.Tok == IllegalTok:
				return fail(p.tooLongErr())
			case p.lx.Tok != Word || p.lx.Val == "":
				return fail(p.posErr(offset, ErrMissingRedirect,
					"%s must be followed by a file name", tok))
			}
			cmd.Redirs[redirSlot(tok)] = p.lx.Val
		case LeftParen:
			if len(cmd.Args) > 0 || cmd.hasRedirs() || cmd.Subshell != nil {
				return fail(p.posErr(p.lx.Offset, ErrSubshellMixed,
					"a subshell cannot follow words or redirections"))
			}
			if p.depth >= p.maxDepth {
				return fail(p.posErr(p.lx.Offset, ErrNestingTooDeep,
					"subshells nested more than %d levels deep", p.maxDepth))
			}
			p.depth++
			sub, err := p.CommandLine(true)
			p.depth--
			if err != nil {
				return fail(err)
			}
			cmd.Subshell = sub
		case IllegalTok:
			return fail(p.tooLongErr())
		default:
			p.lx.Unget()
			if len(cmd.Args) == 0 && cmd.Subshell == nil {
				p.release(cmd)
				return nil, nil
			}
			return cmd, nil
		}
	}
}

// CommandLine parses a chain of commands joined by control operators.
// If inGroup is true, the chain is the body of a subshell and must end
// with ")"; otherwise it must end with the input, and ")" is an error.
// On error, every command parsed so far is released.
func (p *Parser) CommandLine(inGroup bool) (*Command, error) {
	var head, tail *Command
	fail := func(err error) (*Command, error) {
		p.release(head)
		return nil, err
	}
	for {
		cmd, err := p.Command()
		if err != nil {
			return fail(err)
		}
		if cmd == nil {
			return fail(p.emptyErr(tail, inGroup))
		}
		if tail == nil {
			head = cmd
		} else {
			tail.Next = cmd
		}
		tail = cmd

		p.lx.Next()
		switch tok := p.lx.Tok; tok {
		case Semicolon, Background:
			cmd.Op, _ = controlOp(tok)
			p.lx.Next()
			if p.lx.Tok == EOF && !inGroup {
				return head, nil
			}
			if p.lx.Tok == RightParen && inGroup {
				return head, nil
			}
			p.lx.Unget()
		case Pipe, AndThen, OrElse:
			cmd.Op, _ = controlOp(tok)
		case RightParen:
			if !inGroup {
				return fail(p.posErr(p.lx.Offset, ErrUnexpectedCloseGroup,
					") can only be used to close a subshell"))
			}
			cmd.Op = End
			return head, nil
		case EOF:
			if inGroup {
				return fail(p.posErr(p.lx.Offset, ErrUnterminatedGroup,
					"reached EOF without matching ( with )"))
			}
			cmd.Op = End
			return head, nil
		case IllegalTok:
			return fail(p.tooLongErr())
		default:
			return fail(p.posErr(p.lx.Offset, ErrSubshellMixed,
				"%s cannot follow a subshell", tok))
		}
	}
}

// emptyErr explains why no command was found where one was expected,
// given the command before it, if any.
func (p *Parser) emptyErr(prev *Command, inGroup bool) error {
	p.lx.Next()
	tok, offset := p.lx.Tok, p.lx.Offset
	switch {
	case prev != nil && !prev.Op.terminal() && (tok == EOF || tok == RightParen):
		return p.posErr(offset, ErrDanglingOperator,
			"%s must be followed by a command", prev.Op)
	case tok == EOF && inGroup:
		return p.posErr(offset, ErrUnterminatedGroup,
			"reached EOF without matching ( with )")
	case tok == EOF:
		return p.posErr(offset, ErrEmptyCommand, "empty command line")
	case tok == RightParen && !inGroup:
		return p.posErr(offset, ErrUnexpectedCloseGroup,
			") can only be used to close a subshell")
	case tok == RightParen:
		return p.posErr(offset, ErrEmptyCommand, "empty subshell")
	}
	return p.posErr(offset, ErrEmptyCommand,
		"%s can only immediately follow a command", tok)
}
