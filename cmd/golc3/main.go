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

// Command golc3 loads one or more LC-3 object images and runs them to
// completion against the real terminal. It owns everything the core
// refuses to: argument parsing, the raw-mode terminal, and the signal
// that lets a user break out of a runaway program.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/halvorsen/lc3vm/pkg/machine"
)

var helpvar bool

const usage = "golc3 image-file [image-file ...]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.Parse()
}

func golc3() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) < 1 {
		log.Println(usage)
		return 1
	}

	port := newTerminalPort()

	mc := machine.NewMachine(port)

	for _, name := range args {
		if err := loadImageFile(mc, name); err != nil {
			log.Println(err)
			return 1
		}
	}

	raw, isTerm := enterRawTerm()
	defer exitRawTerm(raw, isTerm)

	port.start()
	defer port.stop()

	done := make(chan error, 1)
	go func() { done <- mc.Run() }()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	select {
	case err := <-done:
		if err == nil {
			return 0
		}
		if !errors.Is(err, machine.ErrFatalInstruction) {
			log.Println(err)
		}
		return 1

	case <-sigs:
		return 130
	}
}

func loadImageFile(mc *machine.Machine, name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := mc.LoadImage(file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func main() {
	os.Exit(golc3())
}
