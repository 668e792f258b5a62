// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package syntax_test

import (
	"errors"
	"fmt"
	"os"

	"mvdan.cc/cmdline/syntax"
)

func Example() {
	p := syntax.NewParser()
	cmd, err := p.Parse(`sort <"in file" | uniq -c && ( echo done ; ) &`, "")
	if err != nil {
		fmt.Println(err)
		return
	}
	syntax.NewPrinter().Print(os.Stdout, cmd)
	syntax.NewPrinter().PrintSource(os.Stdout, cmd)
	// Output:
	// [1 args "sort" <in file] |
	// [2 args "uniq" "-c"] &&
	// [0 args
	//   [2 args "echo" "done"] ;
	// ] &
	// sort <"in file" | uniq -c && ( echo done ; ) &
}

func ExampleParseError() {
	_, err := syntax.NewParser().Parse("make && ", "input")
	fmt.Println(err)
	fmt.Println(errors.Is(err, syntax.ErrDanglingOperator))
	// Output:
	// input:9: && must be followed by a command
	// true
}

func ExampleLexer() {
	l := syntax.NewLexer(`x2>y "a b"`, 0)
	for l.Next(); l.Tok != syntax.EOF; l.Next() {
		fmt.Printf("%s %q\n", l.Tok, l.Val)
	}
	// Output:
	// word "x2"
	// > ">"
	// word "y"
	// word "a b"
}

func ExampleWalk() {
	cmd, _ := syntax.NewParser().Parse("a ; (b | (c)) ; d", "")
	syntax.Walk(cmd, func(c *syntax.Command) bool {
		if c.Subshell == nil {
			fmt.Println(c.Args[0])
		}
		return true
	})
	// Output:
	// a
	// b
	// c
	// d
}
