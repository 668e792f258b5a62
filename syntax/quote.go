// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax

import "strings"

// Quote returns a quoted version of the input string, so that the
// [Lexer] reads it back as a single word with the same value.
// Strings without blanks or operator characters are returned as they are.
//
// A double quote cannot be part of a word, as every one of them toggles
// the quoting state. Quote returns false in that case.
func Quote(s string) (_ string, ok bool) {
	if strings.IndexByte(s, '"') >= 0 {
		return "", false
	}
	if s == "" {
		return `""`, true
	}
	for i := 0; i < len(s); i++ {
		if isBlank(s[i]) || isOperator(s[i]) {
			return `"` + s + `"`, true
		}
	}
	return s, true
}
