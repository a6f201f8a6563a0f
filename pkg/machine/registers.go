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

// updateFlags sets Cond to exactly one of {N, Z, P} based on the
// two's-complement sign of the value just written into general register r.
func (reg *Registers) updateFlags(r uint16) {
	switch {
	case reg.R[r] == 0:
		reg.Cond = FlagZ
	case reg.R[r]>>15 != 0:
		reg.Cond = FlagN
	default:
		reg.Cond = FlagP
	}
}
