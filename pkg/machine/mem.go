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

// Read returns the word stored at addr. Reading KBSR re-polls the host
// first: a ready keystroke latches KBSR=0x8000 and KBDR=the next byte;
// otherwise KBSR is cleared to zero. This is the only address with
// side-effecting reads.
func (m *Memory) Read(addr uint16) uint16 {
	if addr == KBSR {
		if m.host != nil && m.host.Poll() {
			b, err := m.host.ReadByte()
			if err == nil {
				m.cells[KBSR] = 0x8000
				m.cells[KBDR] = uint16(b) & 0xFF
			} else {
				m.cells[KBSR] = 0
			}
		} else {
			m.cells[KBSR] = 0
		}
	}

	return m.cells[addr]
}

// Write stores value at addr. There is no special handling for KBSR/KBDR:
// a write to either is a plain store, per §4.2.
func (m *Memory) Write(addr, value uint16) {
	m.cells[addr] = value
}
