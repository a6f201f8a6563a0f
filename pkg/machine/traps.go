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
	"fmt"
	"log"
)

// dispatchTrap runs the service routine named by the TRAP instruction's low
// 8 bits. R7 has already been set to PC by the caller (§4.5's TRAP row);
// these routines are inlined in Go rather than jumped to through a vector
// table, so none of them ever reads R7 back.
func (mc *Machine) dispatchTrap(vector uint16) error {
	switch vector {
	case TrapGetc:
		return mc.trapGetc()
	case TrapOut:
		return mc.trapOut()
	case TrapPuts:
		return mc.trapPuts()
	case TrapIn:
		return mc.trapIn()
	case TrapPutsp:
		return mc.trapPutsp()
	case TrapHalt:
		return mc.trapHalt()
	default:
		log.Printf("machine: ignoring undefined trap vector %#02x", vector)
		return nil
	}
}

func (mc *Machine) trapGetc() error {
	b, err := mc.Host.ReadByte()
	if err != nil {
		return fmt.Errorf("machine: GETC: %w", err)
	}

	mc.Reg.R[0] = uint16(b)
	mc.Reg.updateFlags(0)
	return nil
}

func (mc *Machine) trapOut() error {
	if err := mc.Host.WriteByte(byte(mc.Reg.R[0])); err != nil {
		return fmt.Errorf("machine: OUT: %w", err)
	}
	return mc.flush("OUT")
}

func (mc *Machine) trapPuts() error {
	for addr := mc.Reg.R[0]; ; addr++ {
		word := mc.Mem.Read(addr)
		if word == 0 {
			break
		}

		if err := mc.Host.WriteByte(byte(word)); err != nil {
			return fmt.Errorf("machine: PUTS: %w", err)
		}
	}
	return mc.flush("PUTS")
}

func (mc *Machine) trapIn() error {
	const prompt = "Enter a character: "

	for i := 0; i < len(prompt); i++ {
		if err := mc.Host.WriteByte(prompt[i]); err != nil {
			return fmt.Errorf("machine: IN: %w", err)
		}
	}

	b, err := mc.Host.ReadByte()
	if err != nil {
		return fmt.Errorf("machine: IN: %w", err)
	}

	if err := mc.Host.WriteByte(b); err != nil {
		return fmt.Errorf("machine: IN: %w", err)
	}

	mc.Reg.R[0] = uint16(b)
	mc.Reg.updateFlags(0)
	return mc.flush("IN")
}

func (mc *Machine) trapPutsp() error {
	for addr := mc.Reg.R[0]; ; addr++ {
		word := mc.Mem.Read(addr)
		if word == 0 {
			break
		}

		lo := byte(word)
		if err := mc.Host.WriteByte(lo); err != nil {
			return fmt.Errorf("machine: PUTSP: %w", err)
		}

		if hi := byte(word >> 8); hi != 0 {
			if err := mc.Host.WriteByte(hi); err != nil {
				return fmt.Errorf("machine: PUTSP: %w", err)
			}
		}
	}
	return mc.flush("PUTSP")
}

func (mc *Machine) trapHalt() error {
	const msg = "HALT\n"

	for i := 0; i < len(msg); i++ {
		if err := mc.Host.WriteByte(msg[i]); err != nil {
			return fmt.Errorf("machine: HALT: %w", err)
		}
	}

	if err := mc.flush("HALT"); err != nil {
		return err
	}

	mc.status = Halted
	return nil
}

func (mc *Machine) flush(trap string) error {
	if err := mc.Host.Flush(); err != nil {
		return fmt.Errorf("machine: %s: %w", trap, err)
	}
	return nil
}
