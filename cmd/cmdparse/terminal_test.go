// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build !windows

package main

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	qt "github.com/frankban/quicktest"
)

func TestInteractive(t *testing.T) {
	ptm, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open a pseudo-terminal: %v", err)
	}
	defer ptm.Close()
	defer tty.Close()

	var stdout, stderr bytes.Buffer
	in, out, errOut = tty, &stdout, &stderr
	useEditorConfig = false
	defer func() {
		in, out, errOut = os.Stdin, os.Stdout, os.Stderr
		useEditorConfig = true
	}()

	// the terminal echoes what we type; nobody needs it
	go io.Copy(io.Discard, ptm)

	// ^D on an empty line is the end of input
	_, err = io.WriteString(ptm, "echo foo\na &&\n\n\x04")
	qt.Assert(t, err, qt.IsNil)

	done := make(chan error, 1)
	go func() { done <- formatStdin("<standard input>") }()
	select {
	case err := <-done:
		qt.Assert(t, err, qt.IsNil)
	case <-time.After(10 * time.Second):
		t.Fatal("interactive mode did not stop at the end of input")
	}
	qt.Assert(t, stdout.String(), qt.Equals, "$ [2 args \"echo\" \"foo\"] .\n$ $ $ \n")
	qt.Assert(t, stderr.String(), qt.Equals, "5: && must be followed by a command\n")
}
