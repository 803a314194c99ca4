package disassemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type flatReader [65536]uint8

func (r *flatReader) Read(addr uint16) uint8 { return r[addr] }

func TestStepImmediate(t *testing.T) {
	var mem flatReader
	mem[0x8000] = 0xA9 // LDA #$42
	mem[0x8001] = 0x42

	out, n := Step(0x8000, &mem)
	assert.Equal(t, 2, n)
	assert.Contains(t, out, "LDA")
	assert.Contains(t, out, "#$42")
}

func TestStepAbsolute(t *testing.T) {
	var mem flatReader
	mem[0x9000] = 0x4C // JMP $1234
	mem[0x9001] = 0x34
	mem[0x9002] = 0x12

	out, n := Step(0x9000, &mem)
	assert.Equal(t, 3, n)
	assert.Contains(t, out, "JMP")
	assert.Contains(t, out, "$1234")
}

func TestStepImplied(t *testing.T) {
	var mem flatReader
	mem[0x8000] = 0xEA // NOP

	out, n := Step(0x8000, &mem)
	assert.Equal(t, 1, n)
	assert.Contains(t, out, "NOP")
}
