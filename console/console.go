// Package console wires the CPU, the shared bus, internal RAM, a PPU
// register stub, and an optional cartridge into a single runnable NES.
// It owns the clocking discipline (3 PPU clocks per CPU clock) that the
// core's concurrency model leaves to whoever drives it.
package console

import (
	"fmt"

	"github.com/taraka/nesgo/bus"
	"github.com/taraka/nesgo/cartridge"
	"github.com/taraka/nesgo/cpu"
	"github.com/taraka/nesgo/ppu"
	"github.com/taraka/nesgo/ram"
	"github.com/taraka/nesgo/sram"
)

// defaultSRAMSize is the standard 8 KiB PRG-RAM window boards with
// battery-backed save RAM expose at 0x6000-0x7FFF.
const defaultSRAMSize = 0x2000

// Console is a fully wired NES: bus plus the devices registered on it,
// plus the CPU driving the bus. Device registration order is fixed at
// construction (RAM, then PPU, then cartridge once inserted), which
// matters for read priority if any windows ever overlap.
type Console struct {
	Bus  *bus.Bus
	CPU  *cpu.Chip
	PPU  *ppu.Stub
	RAM  *ram.RAM
	Cart *cartridge.Cartridge
	SRAM *sram.SRAM

	clocks uint64
}

// New constructs a Console with RAM and a PPU register stub connected to
// a fresh bus, and a CPU wired to that bus. No cartridge is inserted yet;
// the CPU will not have a valid program counter until both Insert and
// Reset have been called.
func New() *Console {
	b := bus.New()
	r := ram.New()
	p := ppu.New()
	b.Connect(r)
	b.Connect(p)

	return &Console{
		Bus: b,
		CPU: cpu.New(b),
		PPU: p,
		RAM: r,
	}
}

// Insert connects cart to the bus, claiming the cartridge's PRG-ROM
// window. If the header declares battery-backed PRG-RAM, an SRAM device
// is allocated and connected too, claiming 0x6000-0x7FFF. Inserting a
// second cartridge without power-cycling the Console would double-
// register devices; callers should build a fresh Console per cartridge
// instead.
func (c *Console) Insert(cart *cartridge.Cartridge) {
	c.Cart = cart
	c.Bus.Connect(cart)
	if cart.Header.HasSRAM {
		s, err := sram.New(defaultSRAMSize)
		if err == nil {
			c.SRAM = s
			c.Bus.Connect(s)
		}
	}
}

// Reset reinitializes the CPU from the cartridge's reset vector. Insert
// must be called first, or the CPU will load PC from whatever (likely
// zero) byte the bus happens to return for the unclaimed reset vector.
func (c *Console) Reset() {
	c.CPU.Reset()
}

// Clock advances the system by one CPU clock, ticking the PPU three
// times first per the fixed 3:1 PPU:CPU ratio the hardware runs at.
func (c *Console) Clock() error {
	c.PPU.Tick()
	c.PPU.Tick()
	c.PPU.Tick()
	c.clocks++
	if err := c.CPU.Clock(); err != nil {
		return fmt.Errorf("console: clock %d: %w", c.clocks, err)
	}
	return nil
}

// Clocks reports the total number of CPU clocks run so far.
func (c *Console) Clocks() uint64 { return c.clocks }
