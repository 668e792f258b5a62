// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestShebang(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"#!/usr/bin/cmdparse\n", true},
		{"#!/usr/bin/cmdparse", true},
		{"#!/usr/local/bin/cmdparse -maxargs=8\n", true},
		{"#!/usr/bin/env cmdparse\n", true},
		{"#! /cmdparse\n", true},
		{"#!/bin/sh\n", false},
		{"#!/bin/bash\n", false},
		{"#!/usr/bin/env bash\n", false},
		{"#!/usr/bin/cmdparser\n", false},
		{"#!cmdparse\n", false},
		{"#!/bin/sh\n#!/usr/bin/cmdparse\n", false},
		{"echo foo\n", false},
		{"", false},
	}
	for _, test := range tests {
		qt.Assert(t, HasShebang([]byte(test.in)), qt.Equals, test.want, qt.Commentf("%q", test.in))
	}
}

func TestCouldHoldCommands(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	files := map[string]string{
		"a.sh":         "#!/usr/bin/cmdparse\nx\n",
		"b.cmds":       "",
		"c.txt":        "x\n",
		".hidden.cmds": "x\n",
		"noext":        "#!/usr/bin/env cmdparse\nx\n",
		"short":        "x\n",
		"sub/d.cmds":   "x\n",
		"sub/noext":    "#!/bin/sh\nx\n",
		"sub/e.cmdsx":  "x\n",
	}
	want := map[string]Confidence{
		"a.sh":         ConfNotCommands,
		"b.cmds":       ConfIsCommands,
		"c.txt":        ConfNotCommands,
		".hidden.cmds": ConfNotCommands,
		"noext":        ConfIfShebang,
		"short":        ConfNotCommands,
		"sub":          ConfNotCommands,
		"sub/d.cmds":   ConfIsCommands,
		"sub/noext":    ConfIfShebang,
		"sub/e.cmdsx":  ConfNotCommands,
	}
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		qt.Assert(t, os.MkdirAll(filepath.Dir(path), 0o777), qt.IsNil)
		qt.Assert(t, os.WriteFile(path, []byte(body), 0o666), qt.IsNil)
	}
	got := map[string]Confidence{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		got[filepath.ToSlash(rel)] = CouldHoldCommands(info)
		return nil
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, got, qt.DeepEquals, want)
}
