package cartridge

import "fmt"

// Mapper translates CPU- and PPU-visible addresses into indexes into a
// cartridge's PRG/CHR ROM. Only the translation is a mapper's job; claiming
// the address range and indexing into the ROM slices is the Cartridge's.
type Mapper interface {
	// Read translates a CPU-side PRG-ROM address. ok is false if addr is
	// outside this mapper's PRG window.
	Read(addr uint16) (idx uint32, ok bool)
	// Write translates a CPU-side address for a PRG-RAM or bank-select
	// write. ok is false if this mapper doesn't honor writes at addr.
	Write(addr uint16, data uint8) (idx uint32, ok bool)
	// PPURead translates a PPU-side CHR-ROM address.
	PPURead(addr uint16) (idx uint32, ok bool)
}

// NewMapper constructs the Mapper for the given iNES mapper ID. Only Mapper
// 0 (NROM) is implemented; an unrecognized ID is the one place cartridge
// loading is fatal, surfaced here as an error so the caller can name the
// offending ID in its own diagnostic.
func NewMapper(id uint8, prgChunks uint8) (Mapper, error) {
	switch id {
	case 0:
		return newMapper0(prgChunks), nil
	default:
		return nil, fmt.Errorf("cartridge: unknown mapper id %d", id)
	}
}

// mapper0 implements NROM: no bank switching. CPU reads of 0x8000-0xFFFF
// are masked into the available PRG-ROM, mirroring a single 16 KiB bank
// across the full 32 KiB window when only one bank is present. PPU CHR
// access is a direct 1:1 passthrough.
type mapper0 struct {
	mask uint16
}

func newMapper0(prgChunks uint8) *mapper0 {
	mask := uint16(0x3FFF)
	if prgChunks > 1 {
		mask = 0x7FFF
	}
	return &mapper0{mask: mask}
}

func (m *mapper0) Read(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	return uint32(addr & m.mask), true
}

func (m *mapper0) Write(addr uint16, data uint8) (uint32, bool) {
	// NROM has no PRG-RAM or bank-select registers in this range.
	return 0, false
}

func (m *mapper0) PPURead(addr uint16) (uint32, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	return uint32(addr), true
}
