package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatMemory is a 64 KiB flat address space implementing Bus directly,
// used instead of a real bus.Bus so tests can poke arbitrary addresses
// without wiring RAM/PPU/cartridge devices.
type flatMemory struct {
	mem [65536]uint8
}

func (m *flatMemory) Read(addr uint16) uint8 { return m.mem[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m.mem[addr] = v }

func (m *flatMemory) loadVector(addr uint16, v uint16) {
	m.mem[addr] = uint8(v)
	m.mem[addr+1] = uint8(v >> 8)
}

func (m *flatMemory) loadProgram(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.mem[int(addr)+i] = b
	}
}

// run clocks c at least once and stops after the first Clock call that
// leaves wait at 0 (the in-flight instruction has completed), returning
// the number of Clock calls it took.
func run(t *testing.T, c *Chip) int {
	t.Helper()
	cycles := 0
	for {
		require.NoError(t, c.Clock())
		cycles++
		if c.Wait() == 0 {
			return cycles
		}
	}
}

func newChip(t *testing.T) (*Chip, *flatMemory) {
	t.Helper()
	mem := &flatMemory{}
	mem.loadVector(vectorReset, 0x8000)
	return New(mem), mem
}

func TestResetVector(t *testing.T) {
	mem := &flatMemory{}
	mem.mem[0xFFFC] = 0x34
	mem.mem[0xFFFD] = 0x12
	c := New(mem)
	c.Reset()

	assert.Equal(t, uint16(0x1234), c.PC, spew.Sdump(c))
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.Equal(t, 8, c.Wait())
}

func TestResetIdempotent(t *testing.T) {
	c, _ := newChip(t)
	c.Reset()
	c.A, c.X, c.Y = 1, 2, 3
	c.Reset()
	assert.Zero(t, c.A)
	assert.Zero(t, c.X)
	assert.Zero(t, c.Y)
	assert.Equal(t, uint8(0xFD), c.SP)
}

func TestImmediateLoad(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	mem.loadProgram(0x8000, 0xA9, 0x42) // LDA #$42

	cycles := run(t, c)
	assert.Equal(t, 2, cycles, spew.Sdump(c))
	assert.Equal(t, uint8(0x42), c.A)
	assert.False(t, c.flagSet(FlagZero))
	assert.False(t, c.flagSet(FlagNegative))
}

func TestADCOverflow(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.A = 0x7F
	mem.loadProgram(0x8000, 0x69, 0x01) // ADC #$01

	run(t, c)
	assert.Equal(t, uint8(0x80), c.A, spew.Sdump(c))
	assert.True(t, c.flagSet(FlagOverflow))
	assert.True(t, c.flagSet(FlagNegative))
	assert.False(t, c.flagSet(FlagCarry))
}

func TestSBCBorrow(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.A = 0x00
	c.setFlag(FlagCarry, true) // no borrow pending
	mem.loadProgram(0x8000, 0xE9, 0x01) // SBC #$01

	run(t, c)
	assert.Equal(t, uint8(0xFF), c.A, spew.Sdump(c))
	assert.False(t, c.flagSet(FlagCarry)) // borrow occurred
	assert.True(t, c.flagSet(FlagNegative))
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	mem.loadProgram(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	mem.loadProgram(0x9000, 0x60)             // RTS

	run(t, c) // JSR
	assert.Equal(t, uint16(0x9000), c.PC, spew.Sdump(c))
	assert.Equal(t, uint8(0xFB), c.SP)

	run(t, c) // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
}

func TestIndirectJumpPageWrapBug(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	mem.loadProgram(0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	mem.mem[0x30FF] = 0x80
	mem.mem[0x3000] = 0x12 // bug: high byte read from 0x3000, not 0x3100
	mem.mem[0x3100] = 0x99 // if the bug weren't modeled, this would be read

	run(t, c)
	assert.Equal(t, uint16(0x1280), c.PC, spew.Sdump(c))
}

func TestBranchTakenAndPageCross(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.setFlag(FlagCarry, false)
	mem.loadProgram(0x80F0, 0x90, 0x20) // BCC +0x20, crosses into page 0x81

	c.PC = 0x80F0
	cycles := run(t, c)
	assert.Equal(t, uint16(0x8112), c.PC, spew.Sdump(c))
	assert.Equal(t, 4, cycles) // base 2 + taken 1 + page-cross 1
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.A = 0x7E
	c.X, c.Y = 1, 2
	mem.loadProgram(0x8000, 0x48, 0xA9, 0x00, 0x68) // PHA; LDA #0; PLA
	run(t, c)
	run(t, c)
	run(t, c)
	assert.Equal(t, uint8(0x7E), c.A, spew.Sdump(c))
	assert.Equal(t, uint8(1), c.X)
	assert.Equal(t, uint8(2), c.Y)
}

func TestCPYUsesY(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.X = 0x10
	c.Y = 0x20
	mem.loadProgram(0x8000, 0xC0, 0x20) // CPY #$20

	run(t, c)
	assert.True(t, c.flagSet(FlagZero), "CPY must compare against Y, not X")
	assert.True(t, c.flagSet(FlagCarry))
}

func TestDECDoesNotTouchRegisters(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.X, c.Y, c.A = 5, 5, 5
	mem.loadProgram(0x8000, 0xC6, 0x10) // DEC $10
	mem.mem[0x0010] = 0x01

	run(t, c)
	assert.Equal(t, uint8(0), mem.mem[0x0010])
	assert.Equal(t, uint8(5), c.X)
	assert.Equal(t, uint8(5), c.Y)
	assert.Equal(t, uint8(5), c.A)
}

func TestNOPCoversIllegalOpcodes(t *testing.T) {
	c, mem := newChip(t)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	mem.loadProgram(0x8000, 0x02, 0xEA) // undefined opcode, then real NOP
	run(t, c)
	run(t, c)
	assert.Equal(t, uint16(0x8002), c.PC, spew.Sdump(c))
}

func TestIRQRespectsInterruptDisable(t *testing.T) {
	c, mem := newChip(t)
	mem.loadVector(vectorIRQ, 0x9000)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.P |= FlagInterrupt
	pc := c.PC
	c.IRQ()
	assert.Equal(t, pc, c.PC, "IRQ must be a no-op while I is set")

	c.P &^= FlagInterrupt
	c.IRQ()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, 7, c.Wait())
}

func TestNMIUnconditional(t *testing.T) {
	c, mem := newChip(t)
	mem.loadVector(vectorNMI, 0xA000)
	c.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, c.Clock())
	}
	c.P |= FlagInterrupt
	c.NMI()
	assert.Equal(t, uint16(0xA000), c.PC, spew.Sdump(c))
	assert.Equal(t, 8, c.Wait())
}
