package cpu

// addrKind discriminates the three shapes an addressing-mode handler can
// hand back to an operation handler.
type addrKind int

const (
	addrImplied addrKind = iota
	addrMemory
	addrRelative
)

// addrResult is the tagged value an addressing-mode function produces and
// an operation function consumes: Implied carries no payload (the operand
// is whatever register the operation already knows to use, almost always
// A), Memory carries a resolved 16-bit effective address plus whether
// forming it crossed a page boundary, and Relative carries a sign-extended
// branch displacement that only a branch operation ever reads.
type addrResult struct {
	kind        addrKind
	addr        uint16
	pageCrossed bool
	disp        int16
}

// fetch produces the 8-bit operand value for result per the rule in the
// operations that aren't pure control-flow: Implied yields A, Memory reads
// through the bus, Relative is never fetched this way.
func (c *Chip) fetch(r addrResult) (uint8, error) {
	switch r.kind {
	case addrImplied:
		return c.A, nil
	case addrMemory:
		return c.bus.Read(r.addr), nil
	default:
		return 0, InvalidState{"fetch given a Relative addressing result"}
	}
}

// store writes v to result's operand location: A for Implied, the bus for
// Memory. Relative is never a store target.
func (c *Chip) store(r addrResult, v uint8) error {
	switch r.kind {
	case addrImplied:
		c.A = v
		return nil
	case addrMemory:
		c.bus.Write(r.addr, v)
		return nil
	default:
		return InvalidState{"store given a Relative addressing result"}
	}
}

func (c *Chip) operand() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

func (c *Chip) operand16() uint16 {
	lo := uint16(c.operand())
	hi := uint16(c.operand())
	return hi<<8 | lo
}

// addrIMP is Implied/Accumulator: no operand bytes, the operation works
// directly on A.
func addrIMP(c *Chip) (addrResult, error) {
	return addrResult{kind: addrImplied}, nil
}

// addrIMM is Immediate: the operand byte itself is the value, so the
// effective "address" is just PC before it's consumed.
func addrIMM(c *Chip) (addrResult, error) {
	r := addrResult{kind: addrMemory, addr: c.PC}
	c.PC++
	return r, nil
}

// addrZP0 is Zero Page: one operand byte, used directly as a zero-page
// address.
func addrZP0(c *Chip) (addrResult, error) {
	return addrResult{kind: addrMemory, addr: uint16(c.operand())}, nil
}

// addrZPX is Zero Page,X: operand byte plus X, wrapping within page zero.
func addrZPX(c *Chip) (addrResult, error) {
	addr := uint16(c.operand()+c.X) & 0x00FF
	return addrResult{kind: addrMemory, addr: addr}, nil
}

// addrZPY is Zero Page,Y: same as ZPX but indexed by Y, used only by
// LDX/STX.
func addrZPY(c *Chip) (addrResult, error) {
	addr := uint16(c.operand()+c.Y) & 0x00FF
	return addrResult{kind: addrMemory, addr: addr}, nil
}

// addrABS is Absolute: two operand bytes, little-endian, used directly.
func addrABS(c *Chip) (addrResult, error) {
	return addrResult{kind: addrMemory, addr: c.operand16()}, nil
}

func addrIndexedAbs(c *Chip, index uint8) (addrResult, error) {
	base := c.operand16()
	addr := base + uint16(index)
	crossed := addr&0xFF00 != base&0xFF00
	return addrResult{kind: addrMemory, addr: addr, pageCrossed: crossed}, nil
}

// addrABX is Absolute,X.
func addrABX(c *Chip) (addrResult, error) { return addrIndexedAbs(c, c.X) }

// addrABY is Absolute,Y.
func addrABY(c *Chip) (addrResult, error) { return addrIndexedAbs(c, c.Y) }

// addrIND is Indirect, used only by JMP (ind). Reproduces the famous 6502
// hardware bug: if the low byte of the pointer is 0xFF, the high byte of
// the target is fetched from the start of the same page instead of
// carrying into the next one.
func addrIND(c *Chip) (addrResult, error) {
	ptr := c.operand16()
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	lo := uint16(c.bus.Read(ptr))
	hi := uint16(c.bus.Read(hiAddr))
	return addrResult{kind: addrMemory, addr: hi<<8 | lo}, nil
}

// addrIZX is (Indirect,X): operand byte plus X (wrapped in page zero)
// selects a zero-page pointer to the effective address.
func addrIZX(c *Chip) (addrResult, error) {
	ptr := uint16(c.operand()+c.X) & 0x00FF
	lo := uint16(c.bus.Read(ptr))
	hi := uint16(c.bus.Read((ptr + 1) & 0x00FF))
	return addrResult{kind: addrMemory, addr: hi<<8 | lo}, nil
}

// addrIZY is (Indirect),Y: operand byte selects a zero-page pointer, then
// Y is added to the pointed-at address.
func addrIZY(c *Chip) (addrResult, error) {
	ptr := uint16(c.operand()) & 0x00FF
	lo := uint16(c.bus.Read(ptr))
	hi := uint16(c.bus.Read((ptr + 1) & 0x00FF))
	base := hi<<8 | lo
	addr := base + uint16(c.Y)
	crossed := addr&0xFF00 != base&0xFF00
	return addrResult{kind: addrMemory, addr: addr, pageCrossed: crossed}, nil
}

// addrREL is Relative, used only by branches: a signed 8-bit displacement
// sign-extended to 16 bits, applied against PC by the branch operation
// after it has already advanced past the operand byte.
func addrREL(c *Chip) (addrResult, error) {
	disp := int16(int8(c.operand()))
	return addrResult{kind: addrRelative, disp: disp}, nil
}
