// ops_data.go - Data movement: MOV in all its encodings, LEA, LDS/LES,
// XCHG, PUSH/POP.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) opMovRm8R8() {
	rm, reg := c.decodeModRM()
	c.writeRM8(rm, c.Regs.Reg8(reg))
}

func (c *CPU) opMovR8Rm8() {
	rm, reg := c.decodeModRM()
	c.Regs.SetReg8(reg, c.readRM8(rm))
}

func (c *CPU) opMovRm16R16() {
	rm, reg := c.decodeModRM()
	c.writeRM16(rm, c.Regs.Reg16(reg))
}

func (c *CPU) opMovR16Rm16() {
	rm, reg := c.decodeModRM()
	c.Regs.SetReg16(reg, c.readRM16(rm))
}

// opMovRm16Seg is 0x8C: MOV r/m16, segreg. The reg field selects the
// segment register per the Segment ModR/M interpretation.
func (c *CPU) opMovRm16Seg() {
	rm, reg := c.decodeModRM()
	c.writeRM16(rm, c.Regs.Seg(Segment(reg)))
}

// opMovSegRm16 is 0x8E: MOV segreg, r/m16.
func (c *CPU) opMovSegRm16() {
	rm, reg := c.decodeModRM()
	c.Regs.SetSeg(Segment(reg), c.readRM16(rm))
}

func (c *CPU) opMovR8Imm8(idx byte) func(*CPU) {
	return func(c *CPU) {
		c.Regs.SetReg8(idx, c.fetch8())
	}
}

func (c *CPU) opMovR16Imm16(idx byte) func(*CPU) {
	return func(c *CPU) {
		c.Regs.SetReg16(idx, c.fetch16())
	}
}

func (c *CPU) opMovRm8Imm8() {
	rm, _ := c.decodeModRM()
	c.writeRM8(rm, c.fetch8())
}

func (c *CPU) opMovRm16Imm16() {
	rm, _ := c.decodeModRM()
	c.writeRM16(rm, c.fetch16())
}

// opMovALMoffs8/opMovAXMoffs16 are 0xA0/0xA1: MOV AL/AX, [imm16],
// always addressed relative to DS unless overridden.
func (c *CPU) movMoffsAddr() uint32 {
	offset := c.fetch16()
	seg := SegDS
	if c.hasSegOverr {
		seg = c.prefixSeg
	}
	return c.physical(c.Regs.Seg(seg), offset)
}

func (c *CPU) opMovALMoffs8() {
	c.Regs.SetReg8(RegAL, c.Bus.ReadByte(c.movMoffsAddr()))
}

func (c *CPU) opMovAXMoffs16() {
	c.Regs.AX = c.Bus.ReadWord(c.movMoffsAddr())
}

func (c *CPU) opMovMoffs8AL() {
	c.Bus.WriteByte(c.movMoffsAddr(), byte(c.Regs.AX))
}

func (c *CPU) opMovMoffs16AX() {
	c.Bus.WriteWord(c.movMoffsAddr(), c.Regs.AX)
}

// LEA loads the effective address itself, not the memory it names.
// spec.md §4.2 calls out that a register-form r/m operand is
// undefined for LEA; this implementation loads 0 in that case, since
// no correctly assembled program will encode it. For a memory operand
// the segment base that effectiveAddress added is taken back off, so
// the register receives the 16-bit offset.
func (c *CPU) opLea() {
	rm, reg := c.decodeModRM()
	var offset uint16
	if rm.IsMemory {
		mod, rmField := modRMMod(c.modrm), modRMRM(c.modrm)
		seg := SegDS
		switch {
		case c.hasSegOverr:
			seg = c.prefixSeg
		case rmField == 2 || rmField == 3 || (rmField == 6 && mod != 0):
			seg = SegSS
		}
		offset = uint16(rm.Addr - uint32(c.Regs.Seg(seg))<<4)
	}
	c.Regs.SetReg16(reg, offset)
}

// LDS/LES load a 16:16 far pointer from memory: the register gets the
// offset, the named segment register gets the selector that follows
// it in memory.
func (c *CPU) opLds() {
	rm, reg := c.decodeModRM()
	offset := c.Bus.ReadWord(rm.Addr)
	selector := c.Bus.ReadWord(rm.Addr + 2)
	c.Regs.SetReg16(reg, offset)
	c.Regs.DS = selector
}

func (c *CPU) opLes() {
	rm, reg := c.decodeModRM()
	offset := c.Bus.ReadWord(rm.Addr)
	selector := c.Bus.ReadWord(rm.Addr + 2)
	c.Regs.SetReg16(reg, offset)
	c.Regs.ES = selector
}

func (c *CPU) opXchgRm8R8() {
	rm, reg := c.decodeModRM()
	a, b := c.readRM8(rm), c.Regs.Reg8(reg)
	c.writeRM8(rm, b)
	c.Regs.SetReg8(reg, a)
}

func (c *CPU) opXchgRm16R16() {
	rm, reg := c.decodeModRM()
	a, b := c.readRM16(rm), c.Regs.Reg16(reg)
	c.writeRM16(rm, b)
	c.Regs.SetReg16(reg, a)
}

// opXchgAXReg16 is 0x91-0x97: XCHG AX, r16. 0x90 (XCHG AX,AX, i.e.
// NOP) is wired separately since it has no register other than AX to
// touch.
func (c *CPU) opXchgAXReg16(idx byte) func(*CPU) {
	return func(c *CPU) {
		a := c.Regs.AX
		c.Regs.AX = c.Regs.Reg16(idx)
		c.Regs.SetReg16(idx, a)
	}
}

func (c *CPU) opPushReg16(idx byte) func(*CPU) {
	return func(c *CPU) {
		c.pushWord(c.Regs.Reg16(idx))
	}
}

func (c *CPU) opPopReg16(idx byte) func(*CPU) {
	return func(c *CPU) {
		c.Regs.SetReg16(idx, c.popWord())
	}
}

func (c *CPU) opPushSeg(s Segment) func(*CPU) {
	return func(c *CPU) {
		c.pushWord(c.Regs.Seg(s))
	}
}

func (c *CPU) opPopSeg(s Segment) func(*CPU) {
	return func(c *CPU) {
		c.Regs.SetSeg(s, c.popWord())
	}
}

// opPopRm16 is 0x8F: POP r/m16, the only POP form that can target
// memory instead of a register.
func (c *CPU) opPopRm16() {
	rm, _ := c.decodeModRM()
	c.writeRM16(rm, c.popWord())
}
