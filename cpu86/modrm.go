// modrm.go - ModR/M byte decoding and effective-address computation
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

// Operand is the decoded form of a ModR/M "r/m" field: either a
// register (identified by its raw 3-bit index, interpreted as Reg8 or
// Reg16 depending on the instruction's operand width) or a memory
// location (identified by an already-translated 20-bit physical
// address). This is the tagged pair spec.md §3 describes as the
// ModR/M decoded form.
type Operand struct {
	IsMemory bool
	Reg      byte
	Addr     uint32
}

// fetchModRM returns the current instruction's ModR/M byte, fetching
// it from the instruction stream on first use and caching it for any
// further decode calls within the same Step — mirrors CPU_X86's
// modrmLoaded latch in cpu_x86.go, which exists because a single
// instruction may need to inspect the byte more than once (mod, reg,
// and rm fields are pulled by separate helpers).
func (c *CPU) fetchModRM() byte {
	if !c.modrmLoaded {
		c.modrm = c.fetch8()
		c.modrmLoaded = true
	}
	return c.modrm
}

func modRMMod(b byte) byte { return b >> 6 & 0x03 }
func modRMReg(b byte) byte { return b >> 3 & 0x07 }
func modRMRM(b byte) byte  { return b & 0x07 }

// decodeModRM fetches (or reuses) the ModR/M byte and returns the
// decoded r/m operand together with the raw reg field. Callers
// interpret the reg field themselves via RegisterFile.Reg8/Reg16/Seg
// or as a group opcode extension, since the same 3 bits mean different
// things in different instructions (spec.md §3's Reg8/Reg16/Segment/
// Group interpretations).
func (c *CPU) decodeModRM() (rm Operand, reg byte) {
	b := c.fetchModRM()
	mod := modRMMod(b)
	reg = modRMReg(b)
	rmField := modRMRM(b)

	if mod == 3 {
		return Operand{IsMemory: false, Reg: rmField}, reg
	}
	return Operand{IsMemory: true, Addr: c.effectiveAddress(mod, rmField)}, reg
}

// effectiveAddress computes the 20-bit physical address for a memory
// r/m encoding, applying the base+index table from spec.md §3, the
// mod=00/rm=110 direct-address special case, and any active
// segment-override prefix. BP-based addressing defaults to SS instead
// of DS, per spec.md's "segment defaults" rule; an active override
// always wins regardless of which base register is used.
func (c *CPU) effectiveAddress(mod, rm byte) uint32 {
	var offset uint16
	defaultSeg := SegDS

	switch rm {
	case 0:
		offset = c.Regs.BX + c.Regs.SI
	case 1:
		offset = c.Regs.BX + c.Regs.DI
	case 2:
		offset = c.Regs.BP + c.Regs.SI
		defaultSeg = SegSS
	case 3:
		offset = c.Regs.BP + c.Regs.DI
		defaultSeg = SegSS
	case 4:
		offset = c.Regs.SI
	case 5:
		offset = c.Regs.DI
	case 6:
		if mod == 0 {
			offset = c.fetch16() // direct address, no base register
		} else {
			offset = c.Regs.BP
			defaultSeg = SegSS
		}
	case 7:
		offset = c.Regs.BX
	}

	switch mod {
	case 1:
		disp := int8(c.fetch8())
		offset += uint16(int16(disp))
	case 2:
		offset += c.fetch16()
	}

	seg := defaultSeg
	if c.hasSegOverr {
		seg = c.prefixSeg
	}
	return c.physical(c.Regs.Seg(seg), offset)
}

// readRM8/writeRM8 and readRM16/writeRM16 dereference an already
// decoded Operand at the given width, going through the register file
// or the bus as appropriate.
func (c *CPU) readRM8(op Operand) byte {
	if op.IsMemory {
		return c.Bus.ReadByte(op.Addr)
	}
	return c.Regs.Reg8(op.Reg)
}

func (c *CPU) writeRM8(op Operand, v byte) {
	if op.IsMemory {
		c.Bus.WriteByte(op.Addr, v)
		return
	}
	c.Regs.SetReg8(op.Reg, v)
}

func (c *CPU) readRM16(op Operand) uint16 {
	if op.IsMemory {
		return c.Bus.ReadWord(op.Addr)
	}
	return c.Regs.Reg16(op.Reg)
}

func (c *CPU) writeRM16(op Operand, v uint16) {
	if op.IsMemory {
		c.Bus.WriteWord(op.Addr, v)
		return
	}
	c.Regs.SetReg16(op.Reg, v)
}
