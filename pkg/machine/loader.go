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

package machine

import (
	"errors"
	"fmt"
	"io"

	"github.com/halvorsen/lc3vm/pkg/encoding"
)

// ErrShortImage is returned when an image stream does not even contain a
// two-byte origin.
var ErrShortImage = errors.New("machine: image shorter than a two-byte origin")

// readWord reads two raw bytes from r and returns them as a big-endian
// word, by reading them in host order and running them through the
// involutive byte-swap helper rather than a separate big-endian codec.
func readWord(r io.Reader) (uint16, bool, error) {
	var buf [2]byte

	n, err := io.ReadFull(r, buf[:])
	switch {
	case n == 2:
		native := uint16(buf[1])<<8 | uint16(buf[0])
		return encoding.SwapEndian(native), false, nil
	case n == 0 && err == io.EOF:
		return 0, true, nil
	case n == 1 && err == io.ErrUnexpectedEOF:
		// Odd trailing byte: silently discarded, not an error.
		return 0, true, nil
	default:
		return 0, false, err
	}
}

// LoadImage reads an LC-3 object image from r and stores it into the
// machine's memory starting at the image's own origin word. Multiple
// images may be loaded in sequence; a later image's words overwrite an
// earlier one's at overlapping addresses.
func (mc *Machine) LoadImage(r io.Reader) error {
	origin, eof, err := readWord(r)
	if err != nil {
		return fmt.Errorf("machine: reading image origin: %w", err)
	}
	if eof {
		return ErrShortImage
	}

	limit := uint32(1<<16) - uint32(origin)

	for i := uint32(0); i < limit; i++ {
		word, eof, err := readWord(r)
		if err != nil {
			return fmt.Errorf("machine: reading image word: %w", err)
		}
		if eof {
			break
		}

		mc.Mem.Write(origin+uint16(i), word)
	}

	return nil
}
