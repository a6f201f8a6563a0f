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

package encoding_test

import (
	"testing"

	"github.com/halvorsen/lc3vm/pkg/encoding"
)

func TestSignExtendBelowHalfRangeIsUnchanged(t *testing.T) {
	got := encoding.SignExtend(0x0F, 5) // 0x0F < 2^4, bit 4 clear
	if got != 0x0F {
		t.Errorf("SignExtend(0x0F, 5) = %#04x, want 0x000F", got)
	}
}

func TestSignExtendAboveHalfRangeFillsHighBits(t *testing.T) {
	got := encoding.SignExtend(0x1F, 5) // all 5 bits set, sign bit set
	want := uint16(0xFFFF)
	if got != want {
		t.Errorf("SignExtend(0x1F, 5) = %#04x, want %#04x", got, want)
	}

	got = encoding.SignExtend(0x10, 5) // 2^4, the boundary case
	want = uint16(0x10) | (0xFFFF << 5 & 0xFFFF)
	if got != want {
		t.Errorf("SignExtend(0x10, 5) = %#04x, want %#04x", got, want)
	}
}

func TestSwapEndianIsInvolution(t *testing.T) {
	values := []uint16{0x0000, 0xFFFF, 0x1234, 0xABCD, 0x00FF, 0xFF00}

	for _, v := range values {
		if got := encoding.SwapEndian(encoding.SwapEndian(v)); got != v {
			t.Errorf("SwapEndian(SwapEndian(%#04x)) = %#04x, want %#04x", v, got, v)
		}
	}
}

func TestSwapEndianReversesBytes(t *testing.T) {
	if got := encoding.SwapEndian(0x1234); got != 0x3412 {
		t.Errorf("SwapEndian(0x1234) = %#04x, want 0x3412", got)
	}
}
