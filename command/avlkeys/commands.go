// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

const usage = "[--help] [--verbose] [--quiet] [--check] [--print] [--config-file=FILE] [--insert=KEY]... [--search=KEY]... [[command|help] arguments...]"

// setup command handler
//
// returns true if the command was fully handled and the program
// should stop, false to continue with the normal run
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %q\n", command)
		}
		fmt.Fprintf(w, "usage: %s %s\n", program, usage)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")
		fmt.Fprintf(w, "  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "keys from the configuration \"insert\" list and --insert options are added\n")
		fmt.Fprintf(w, "in order, then each key from \"search\" and --search is looked up\n")
		fmt.Fprintf(w, "\n")
		return true
	}
}
