// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

// Lexer splits a single command line into tokens.
//
// Each call to [Lexer.Next] replaces Tok, Val and Offset. Val is only
// valid until the following call, so callers wanting to keep it must
// copy it, which with Go strings is simply holding on to the value.
type Lexer struct {
	Tok    Token  // kind of the current token
	Val    string // literal text; empty for EOF and IllegalTok
	Offset int    // byte offset of the current token in the line

	src string
	pos int

	// last is where the current token was fetched from, or -1 once it
	// has been pushed back.
	last int

	maxTokenLen int
	buf         []byte
}

// NewLexer returns a lexer over src. Words longer than maxTokenLen
// bytes are reported as IllegalTok; a non-positive value means
// DefaultMaxTokenLen.
func NewLexer(src string, maxTokenLen int) *Lexer {
	if maxTokenLen <= 0 {
		maxTokenLen = DefaultMaxTokenLen
	}
	l := &Lexer{maxTokenLen: maxTokenLen}
	l.Reset(src)
	return l
}

// Reset points the lexer at the start of a new line.
func (l *Lexer) Reset(src string) {
	l.src, l.pos, l.last = src, 0, -1
	l.Tok, l.Val, l.Offset = IllegalTok, "", 0
	l.buf = l.buf[:0]
}

// Rest returns the input that has not been consumed yet.
func (l *Lexer) Rest() string { return l.src[l.pos:] }

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isOperator reports whether an unquoted b ends a word.
func isOperator(b byte) bool {
	switch b {
	case '<', '>', ';', '&', '|', '(', ')':
		return true
	}
	return false
}

// Next fetches the next token and advances past it.
func (l *Lexer) Next() {
	l.last = l.pos
	for l.pos < len(l.src) && isBlank(l.src[l.pos]) {
		l.pos++
	}
	l.Offset, l.Val = l.pos, ""
	if l.pos >= len(l.src) {
		l.Tok = EOF
		return
	}
	if tok, n := operator(l.src[l.pos:]); n > 0 {
		l.Tok, l.Val = tok, l.src[l.pos:l.pos+n]
		l.pos += n
		return
	}
	l.word()
}

// Unget backs the lexer up by one token, so that the next call to
// Next returns the same token again. It is impossible to back up more
// than one token; a second call without a Next in between panics.
func (l *Lexer) Unget() {
	if l.last < 0 {
		panic("syntax: Unget without a preceding Next")
	}
	l.pos, l.last = l.last, -1
}

// operator returns the operator at the start of s and its length, or a
// zero length if s does not start with one.
func operator(s string) (Token, int) {
	two := len(s) > 1
	switch s[0] {
	case '<':
		return RdrIn, 1
	case '>':
		return RdrOut, 1
	case '2':
		// only a leading "2>" is special; "x2>y" is "x2", ">", "y"
		if two && s[1] == '>' {
			return RdrErr, 2
		}
	case ';':
		return Semicolon, 1
	case '&':
		if two && s[1] == '&' {
			return AndThen, 2
		}
		return Background, 1
	case '|':
		if two && s[1] == '|' {
			return OrElse, 2
		}
		return Pipe, 1
	case '(':
		return LeftParen, 1
	case ')':
		return RightParen, 1
	}
	return Word, 0
}

// word reads a word, dropping double quotes and toggling the quote
// state on each of them. Quoted blanks and operators are part of the
// word.
func (l *Lexer) word() {
	l.buf = l.buf[:0]
	quoted, tooLong := false, false
	for ; l.pos < len(l.src); l.pos++ {
		b := l.src[l.pos]
		if b == '"' {
			quoted = !quoted
			continue
		}
		if !quoted && (isBlank(b) || isOperator(b)) {
			break
		}
		if len(l.buf) == l.maxTokenLen {
			// keep going so that the cursor ends up past the word
			tooLong = true
			continue
		}
		l.buf = append(l.buf, b)
	}
	if tooLong {
		l.Tok = IllegalTok
		return
	}
	l.Tok, l.Val = Word, string(l.buf)
}
