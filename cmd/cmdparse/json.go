// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"encoding/json"
	"io"

	"mvdan.cc/cmdline/syntax"
)

// jsonCommand mirrors syntax.Command, naming the redirections instead
// of indexing them.
type jsonCommand struct {
	Args     []string      `json:",omitempty"`
	Stdin    string        `json:",omitempty"`
	Stdout   string        `json:",omitempty"`
	Stderr   string        `json:",omitempty"`
	Subshell []jsonCommand `json:",omitempty"`
	Op       syntax.ControlOp
}

func jsonChain(cmd *syntax.Command) []jsonCommand {
	var list []jsonCommand
	for ; cmd != nil; cmd = cmd.Next {
		list = append(list, jsonCommand{
			Args:     cmd.Args,
			Stdin:    cmd.Redirs[syntax.Stdin],
			Stdout:   cmd.Redirs[syntax.Stdout],
			Stderr:   cmd.Redirs[syntax.Stderr],
			Subshell: jsonChain(cmd.Subshell),
			Op:       cmd.Op,
		})
	}
	return list
}

func writeJSON(w io.Writer, cmds []*syntax.Command, pretty bool) error {
	lines := make([][]jsonCommand, len(cmds))
	for i, cmd := range cmds {
		lines[i] = jsonChain(cmd)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "\t")
	}
	return enc.Encode(lines)
}
