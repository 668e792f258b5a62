// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build !windows

package main

import "github.com/google/renameio/v2"

// writeFile replaces a file atomically, so that a failure halfway
// through never leaves a truncated file behind.
var writeFile = renameio.WriteFile
