// Package ppu implements the CPU-bus-visible half of the NES picture
// processing unit: the 8-byte register window at 0x2000-0x3FFF. Everything
// about how those registers drive pixel generation is out of scope here —
// this stub only guarantees that CPU reads and writes in this window reach
// the registers unmodified. Actual rendering lives in a real PPU
// implementation the core doesn't need to know about.
package ppu

const (
	windowStart = 0x2000
	windowEnd   = 0x4000
	regMask     = 0x7
)

// Register offsets within the mirrored 8-byte window.
const (
	RegControl = 0
	RegMask    = 1
	RegStatus  = 2
	RegOAMAddr = 3
	RegOAMData = 4
	RegScroll  = 5
	RegAddr    = 6
	RegData    = 7
)

// Stub is a minimal bus.Device standing in for the PPU register file. It
// claims 0x2000-0x3FFF, mirrors every 8 bytes, and stores whatever the CPU
// last wrote to each of the 8 registers. It performs none of the PPU's
// actual address-increment, latch, or rendering side effects; those belong
// to a full PPU, which is out of scope for the core (see spec §6).
type Stub struct {
	reg [8]uint8
}

// New returns a Stub with all registers cleared.
func New() *Stub {
	return &Stub{}
}

// Read implements bus.Device.
func (p *Stub) Read(addr uint16) (uint8, bool) {
	if addr < windowStart || addr >= windowEnd {
		return 0, false
	}
	return p.reg[addr&regMask], true
}

// Write implements bus.Device.
func (p *Stub) Write(addr uint16, data uint8) {
	if addr < windowStart || addr >= windowEnd {
		return
	}
	p.reg[addr&regMask] = data
}

// Tick advances the PPU by one of its own clocks. A real PPU would advance
// its scanline/dot counters and raster state here; the stub only exists so
// the console shell can hold the 3:1 PPU:CPU clock ratio spec §2 requires
// without special-casing "no PPU installed".
func (p *Stub) Tick() {}
