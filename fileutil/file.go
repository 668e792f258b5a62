// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package fileutil decides which files on disk hold command lines:
// files with the .cmds extension, and files without an extension whose
// first line runs cmdparse. Shell scripts are not command lines, as most
// of their lines use syntax the parser rejects.
package fileutil

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"regexp"
)

// Ext is the file extension of command line files.
const Ext = ".cmds"

// shebangRe matches "#!/usr/bin/cmdparse" and "#!/usr/bin/env cmdparse".
var shebangRe = regexp.MustCompile(`^#!\s?/(\S*/)?(env\s+)?cmdparse(\s|$)`)

// minShebang is the shortest first line HasShebang accepts.
const minShebang = len("#!/cmdparse")

// HasShebang reports whether bs begins with a shebang line running
// cmdparse. Only the first line is looked at.
func HasShebang(bs []byte) bool {
	if i := bytes.IndexByte(bs, '\n'); i >= 0 {
		bs = bs[:i]
	}
	return len(bs) >= minShebang && shebangRe.Match(bs)
}

type Confidence int

const (
	ConfNotCommands Confidence = iota
	ConfIfShebang
	ConfIsCommands
)

// CouldHoldCommands reports how likely a file is to hold command lines,
// judging by its name, type and size. ConfIfShebang means that the
// file's first bytes need to be checked with HasShebang.
func CouldHoldCommands(info fs.FileInfo) Confidence {
	name := info.Name()
	if info.IsDir() || name[0] == '.' || !info.Mode().IsRegular() {
		return ConfNotCommands
	}
	switch filepath.Ext(name) {
	case Ext:
		return ConfIsCommands
	case "":
		if info.Size() < int64(minShebang) {
			return ConfNotCommands
		}
		return ConfIfShebang
	}
	return ConfNotCommands
}
