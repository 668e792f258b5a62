// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import "os"

// TODO: support atomic writes on Windows once renameio supports it
var writeFile = os.WriteFile
