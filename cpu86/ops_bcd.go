// ops_bcd.go - Decimal and ASCII adjust instructions, XLAT, and the
// sign-extension pair CBW/CWD.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) opDaa() {
	al := byte(c.Regs.AX)
	oldAL := al
	oldCF := c.Regs.CF()
	cf, af := false, false

	if al&0x0F > 9 || c.Regs.AF() {
		newAL := al + 6
		cf = oldCF || newAL < al
		al = newAL
		af = true
	}
	if oldAL > 0x99 || oldCF {
		al += 0x60
		cf = true
	}

	c.Regs.SetReg8(RegAL, al)
	c.Regs.SetFlag(FlagCF, cf)
	c.Regs.SetFlag(FlagAF, af)
	c.Regs.SetFlag(FlagZF, al == 0)
	c.Regs.SetFlag(FlagSF, al&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(al))
}

func (c *CPU) opDas() {
	al := byte(c.Regs.AX)
	oldAL := al
	oldCF := c.Regs.CF()
	cf, af := false, false

	if al&0x0F > 9 || c.Regs.AF() {
		newAL := al - 6
		cf = oldCF || newAL > al
		al = newAL
		af = true
	}
	if oldAL > 0x99 || oldCF {
		al -= 0x60
		cf = true
	}

	c.Regs.SetReg8(RegAL, al)
	c.Regs.SetFlag(FlagCF, cf)
	c.Regs.SetFlag(FlagAF, af)
	c.Regs.SetFlag(FlagZF, al == 0)
	c.Regs.SetFlag(FlagSF, al&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(al))
}

func (c *CPU) opAaa() {
	al := byte(c.Regs.AX)
	if al&0x0F > 9 || c.Regs.AF() {
		c.Regs.SetReg8(RegAL, (al+6)&0x0F)
		c.Regs.SetReg8(RegAH, c.Regs.Reg8(RegAH)+1)
		c.Regs.SetFlag(FlagAF, true)
		c.Regs.SetFlag(FlagCF, true)
	} else {
		c.Regs.SetReg8(RegAL, al&0x0F)
		c.Regs.SetFlag(FlagAF, false)
		c.Regs.SetFlag(FlagCF, false)
	}
}

func (c *CPU) opAas() {
	al := byte(c.Regs.AX)
	if al&0x0F > 9 || c.Regs.AF() {
		c.Regs.SetReg8(RegAL, (al-6)&0x0F)
		c.Regs.SetReg8(RegAH, c.Regs.Reg8(RegAH)-1)
		c.Regs.SetFlag(FlagAF, true)
		c.Regs.SetFlag(FlagCF, true)
	} else {
		c.Regs.SetReg8(RegAL, al&0x0F)
		c.Regs.SetFlag(FlagAF, false)
		c.Regs.SetFlag(FlagCF, false)
	}
}

// opAam divides AL by the fetched immediate (conventionally 10),
// storing the quotient in AH and the remainder in AL. A zero
// immediate is a divide fault, delivered exactly like DIV's, per
// spec.md §4.3.7.
func (c *CPU) opAam() {
	imm := c.fetch8()
	if imm == 0 {
		c.Interrupt(0)
		return
	}
	al := byte(c.Regs.AX)
	ah := al / imm
	rem := al % imm
	c.Regs.SetReg8(RegAH, ah)
	c.Regs.SetReg8(RegAL, rem)
	c.Regs.SetFlag(FlagZF, rem == 0)
	c.Regs.SetFlag(FlagSF, rem&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(rem))
}

// opAad folds AH*imm into AL before division-by-repeated-subtraction
// style BCD input parsing, then zeroes AH.
func (c *CPU) opAad() {
	imm := c.fetch8()
	al := byte(c.Regs.AX)
	ah := byte(c.Regs.AX >> 8)
	result := al + ah*imm
	c.Regs.SetReg8(RegAL, result)
	c.Regs.SetReg8(RegAH, 0)
	c.Regs.SetFlag(FlagZF, result == 0)
	c.Regs.SetFlag(FlagSF, result&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(result))
}

// XLAT translates AL through a 256-byte table pointed to by DS:BX
// (overridable), per spec.md's supplemental-instruction list.
func (c *CPU) opXlat() {
	seg := SegDS
	if c.hasSegOverr {
		seg = c.prefixSeg
	}
	addr := c.physical(c.Regs.Seg(seg), c.Regs.BX+uint16(byte(c.Regs.AX)))
	c.Regs.SetReg8(RegAL, c.Bus.ReadByte(addr))
}

func (c *CPU) opCbw() {
	c.Regs.AX = uint16(int16(int8(byte(c.Regs.AX))))
}

func (c *CPU) opCwd() {
	if int16(c.Regs.AX) < 0 {
		c.Regs.DX = 0xFFFF
	} else {
		c.Regs.DX = 0x0000
	}
}
