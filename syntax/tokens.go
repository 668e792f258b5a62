// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Token is the kind of a lexical unit returned by a [Lexer].
type Token int

//go:generate stringer -type Token -linecomment

// The list of all possible tokens.
const (
	IllegalTok Token = iota // illegal
	EOF                     // EOF
	Word                    // word

	RdrIn  // <
	RdrOut // >
	RdrErr // 2>

	Semicolon  // ;
	Background // &
	AndThen    // &&
	Pipe       // |
	OrElse     // ||

	LeftParen  // (
	RightParen // )
)

// IsRedirect reports whether the token is one of the redirection operators.
func (t Token) IsRedirect() bool { return t >= RdrIn && t <= RdrErr }

// ControlOp is the operator that follows a command in a chain.
type ControlOp int

const (
	End      ControlOp = iota // .
	Sequence                  // ;
	Async                     // &
	Piped                     // |
	AndIf                     // &&
	OrIf                      // ||
)

func (o ControlOp) String() string {
	switch o {
	case End:
		return "."
	case Sequence:
		return ";"
	case Async:
		return "&"
	case Piped:
		return "|"
	case AndIf:
		return "&&"
	case OrIf:
		return "||"
	}
	return "ControlOp(?)"
}

// MarshalText encodes the operator as its symbol, like in JSON output.
func (o ControlOp) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// terminal reports whether a chain may end on the operator.
func (o ControlOp) terminal() bool {
	return o == End || o == Sequence || o == Async
}

func controlOp(t Token) (ControlOp, bool) {
	switch t {
	case Semicolon:
		return Sequence, true
	case Background:
		return Async, true
	case Pipe:
		return Piped, true
	case AndThen:
		return AndIf, true
	case OrElse:
		return OrIf, true
	case EOF:
		return End, true
	}
	return 0, false
}
