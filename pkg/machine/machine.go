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

// Package machine implements the LC-3 fetch-decode-execute core: memory,
// registers, the instruction set, the trap handlers, and the object-image
// loader. It depends on nothing outside the standard library and never
// touches a terminal, a signal, or an argument list — those belong to the
// command built around it.
package machine

import (
	"errors"
	"fmt"

	"github.com/halvorsen/lc3vm/pkg/encoding"
)

// ErrFatalInstruction is returned by Run when the fetched instruction was
// RTI or the reserved opcode RES, per §4.5: both are unimplemented and
// abort the machine.
var ErrFatalInstruction = errors.New("machine: fatal instruction (RES or RTI)")

// NewMachine constructs a zeroed machine with PC at the conventional user
// program origin and COND initialized to Z, wired to host for keyboard
// input and output.
func NewMachine(host HostPort) *Machine {
	mc := &Machine{Host: host}
	mc.Mem.host = host
	mc.Reset()
	return mc
}

// Reset zeroes memory and registers and re-establishes the initial PC/COND
// state described in §3. It does not touch the host port.
func (mc *Machine) Reset() {
	mc.Reg = Registers{PC: UserSpaceStart, Cond: FlagZ}
	mc.Mem.cells = [1 << 16]uint16{}
	mc.status = Running
}

// Run executes instructions until the machine halts, aborts, or a host I/O
// error escapes a trap handler. This is the single "run until halt" entry
// point described in §1; the surrounding program has no other way to drive
// the machine to completion.
func (mc *Machine) Run() error {
	for mc.status == Running {
		if err := mc.Step(); err != nil {
			return err
		}
	}

	if mc.status == Aborted {
		return ErrFatalInstruction
	}

	return nil
}

// Step fetches, decodes, and executes exactly one instruction. It is safe
// to call only while Status() == Running; calling it again after HALTED or
// ABORTED has no defined effect beyond leaving the machine in that same
// terminal state.
func (mc *Machine) Step() error {
	if mc.status != Running {
		return nil
	}

	instr := mc.Mem.Read(mc.Reg.PC)
	mc.Reg.PC++

	op := instr >> 12

	switch op {
	case OpADD:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7

		if (instr>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instr&0x1F, 5)
			mc.Reg.R[dr] = mc.Reg.R[sr1] + imm5
		} else {
			sr2 := instr & 0x7
			mc.Reg.R[dr] = mc.Reg.R[sr1] + mc.Reg.R[sr2]
		}

		mc.Reg.updateFlags(dr)

	case OpAND:
		dr := (instr >> 9) & 0x7
		sr1 := (instr >> 6) & 0x7

		if (instr>>5)&0x1 == 1 {
			imm5 := encoding.SignExtend(instr&0x1F, 5)
			mc.Reg.R[dr] = mc.Reg.R[sr1] & imm5
		} else {
			sr2 := instr & 0x7
			mc.Reg.R[dr] = mc.Reg.R[sr1] & mc.Reg.R[sr2]
		}

		mc.Reg.updateFlags(dr)

	case OpNOT:
		dr := (instr >> 9) & 0x7
		sr := (instr >> 6) & 0x7

		mc.Reg.R[dr] = ^mc.Reg.R[sr]
		mc.Reg.updateFlags(dr)

	case OpBR:
		nzp := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		if nzp&mc.Reg.Cond != 0 {
			mc.Reg.PC += off9
		}

	case OpJMP:
		base := (instr >> 6) & 0x7
		mc.Reg.PC = mc.Reg.R[base]

	case OpJSR:
		mc.Reg.R[7] = mc.Reg.PC

		if (instr>>11)&0x1 == 1 {
			off11 := encoding.SignExtend(instr&0x7FF, 11)
			mc.Reg.PC += off11
		} else {
			base := (instr >> 6) & 0x7
			mc.Reg.PC = mc.Reg.R[base]
		}

	case OpLD:
		dr := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		mc.Reg.R[dr] = mc.Mem.Read(mc.Reg.PC + off9)
		mc.Reg.updateFlags(dr)

	case OpLDI:
		dr := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		mc.Reg.R[dr] = mc.Mem.Read(mc.Mem.Read(mc.Reg.PC + off9))
		mc.Reg.updateFlags(dr)

	case OpLDR:
		dr := (instr >> 9) & 0x7
		base := (instr >> 6) & 0x7
		off6 := encoding.SignExtend(instr&0x3F, 6)

		mc.Reg.R[dr] = mc.Mem.Read(mc.Reg.R[base] + off6)
		mc.Reg.updateFlags(dr)

	case OpLEA:
		dr := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		mc.Reg.R[dr] = mc.Reg.PC + off9
		mc.Reg.updateFlags(dr)

	case OpST:
		sr := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		mc.Mem.Write(mc.Reg.PC+off9, mc.Reg.R[sr])

	case OpSTI:
		sr := (instr >> 9) & 0x7
		off9 := encoding.SignExtend(instr&0x1FF, 9)

		mc.Mem.Write(mc.Mem.Read(mc.Reg.PC+off9), mc.Reg.R[sr])

	case OpSTR:
		sr := (instr >> 9) & 0x7
		base := (instr >> 6) & 0x7
		off6 := encoding.SignExtend(instr&0x3F, 6)

		mc.Mem.Write(mc.Reg.R[base]+off6, mc.Reg.R[sr])

	case OpTRAP:
		mc.Reg.R[7] = mc.Reg.PC
		if err := mc.dispatchTrap(instr & 0xFF); err != nil {
			return err
		}

	case OpRTI, OpRES:
		mc.status = Aborted

	default:
		// Unreachable: op is 4 bits, all 16 values are handled above.
		mc.status = Aborted
		return fmt.Errorf("machine: unreachable opcode %#x", op)
	}

	return nil
}
