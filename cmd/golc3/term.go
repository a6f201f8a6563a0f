// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"log"
	"os"

	"golang.org/x/term"
)

// enterRawTerm disables line buffering and echo on stdin, the way the LC-3
// keyboard device expects: one key, no cooking, no visible echo (traps
// that want an echo, like IN, do it themselves). If stdin isn't a
// terminal at all (piped input, a test harness), raw mode is skipped
// entirely and isTerm is false.
func enterRawTerm() (state *term.State, isTerm bool) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, false
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		log.Println("entering raw mode:", err)
		return nil, false
	}

	return state, true
}

func exitRawTerm(state *term.State, isTerm bool) {
	if !isTerm || state == nil {
		return
	}

	if err := term.Restore(int(os.Stdin.Fd()), state); err != nil {
		log.Println("restoring terminal:", err)
	}
}
