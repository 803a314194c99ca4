// Package disassemble renders 6502 instructions back to text, driven by
// the same opcode metadata (github.com/taraka/nesgo/cpu.Lookup) the
// interpreter itself dispatches through, so the disassembly can never
// drift out of sync with what the CPU actually executes.
package disassemble

import (
	"fmt"

	"github.com/taraka/nesgo/cpu"
)

// Reader is the minimal read access a disassembler needs; bus.Bus
// satisfies it directly. Individual bus.Device implementations (RAM,
// cartridge) do not, since their Read also reports whether the address is
// claimed.
type Reader interface {
	Read(addr uint16) uint8
}

// Step disassembles the instruction at pc, returning its text rendering
// and the number of bytes it occupies (for the caller to advance pc by).
// This does not interpret control flow: a JMP target is printed, not
// followed.
func Step(pc uint16, r Reader) (string, int) {
	opcode := r.Read(pc)
	info := cpu.Lookup(opcode)

	var operand string
	switch info.Mode {
	case "IMP":
		operand = ""
	case "IMM":
		operand = fmt.Sprintf("#$%02X", r.Read(pc+1))
	case "ZP0":
		operand = fmt.Sprintf("$%02X", r.Read(pc+1))
	case "ZPX":
		operand = fmt.Sprintf("$%02X,X", r.Read(pc+1))
	case "ZPY":
		operand = fmt.Sprintf("$%02X,Y", r.Read(pc+1))
	case "IZX":
		operand = fmt.Sprintf("($%02X,X)", r.Read(pc+1))
	case "IZY":
		operand = fmt.Sprintf("($%02X),Y", r.Read(pc+1))
	case "REL":
		disp := int16(int8(r.Read(pc + 1)))
		target := uint16(int32(pc) + 2 + int32(disp))
		operand = fmt.Sprintf("$%02X (%04X)", r.Read(pc+1), target)
	case "ABS":
		lo, hi := r.Read(pc+1), r.Read(pc+2)
		operand = fmt.Sprintf("$%02X%02X", hi, lo)
	case "ABX":
		lo, hi := r.Read(pc+1), r.Read(pc+2)
		operand = fmt.Sprintf("$%02X%02X,X", hi, lo)
	case "ABY":
		lo, hi := r.Read(pc+1), r.Read(pc+2)
		operand = fmt.Sprintf("$%02X%02X,Y", hi, lo)
	case "IND":
		lo, hi := r.Read(pc+1), r.Read(pc+2)
		operand = fmt.Sprintf("($%02X%02X)", hi, lo)
	default:
		operand = "???"
	}

	if operand == "" {
		return fmt.Sprintf("%04X %02X       %s", pc, opcode, info.Mnemonic), info.Length
	}
	return fmt.Sprintf("%04X %02X       %s %s", pc, opcode, info.Mnemonic, operand), info.Length
}
