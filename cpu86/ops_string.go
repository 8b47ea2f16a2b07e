// ops_string.go - MOVS/CMPS/SCAS/LODS/STOS and their REP/REPE/REPNE
// repetition, per spec.md §4.2's string family.
//
// Grounded on CPU_X86's opMovsb/opStosb shape in cpu_x86_ops.go: one
// body closure per element, repeated by a shared driver rather than
// duplicating the CX/ZF bookkeeping in every handler.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

// siAddr honors a segment-override prefix (the only string operand
// that's overridable); diAddr is always ES:DI on real hardware.
func (c *CPU) siAddr() uint32 {
	seg := SegDS
	if c.hasSegOverr {
		seg = c.prefixSeg
	}
	return c.physical(c.Regs.Seg(seg), c.Regs.SI)
}

func (c *CPU) diAddr() uint32 {
	return c.physical(c.Regs.ES, c.Regs.DI)
}

func (c *CPU) advanceSI(n uint16) {
	if c.Regs.DF() {
		c.Regs.SI -= n
	} else {
		c.Regs.SI += n
	}
}

func (c *CPU) advanceDI(n uint16) {
	if c.Regs.DF() {
		c.Regs.DI -= n
	} else {
		c.Regs.DI += n
	}
}

// runStringOp drives body once, or (with an active REP/REPE/REPNE
// prefix) once per remaining CX, per spec.md's rep-prefix semantics.
// withCompare distinguishes CMPS/SCAS, whose repeat condition also
// depends on ZF, from MOVS/STOS/LODS, which repeat unconditionally
// until CX reaches zero. The whole repetition runs to completion
// within a single Step call — there's no external-interrupt seam
// mid-string, since spec.md's interrupt model only requires delivery
// between instructions.
func (c *CPU) runStringOp(withCompare bool, body func()) {
	if c.prefixRep == repNone {
		body()
		return
	}
	for c.Regs.CX != 0 {
		body()
		c.Regs.CX--
		if withCompare {
			if c.prefixRep == repEqual && !c.Regs.ZF() {
				break
			}
			if c.prefixRep == repNotEqual && c.Regs.ZF() {
				break
			}
		}
	}
}

func (c *CPU) opMovsb() {
	c.runStringOp(false, func() {
		c.Bus.WriteByte(c.diAddr(), c.Bus.ReadByte(c.siAddr()))
		c.advanceSI(1)
		c.advanceDI(1)
	})
}

func (c *CPU) opMovsw() {
	c.runStringOp(false, func() {
		c.Bus.WriteWord(c.diAddr(), c.Bus.ReadWord(c.siAddr()))
		c.advanceSI(2)
		c.advanceDI(2)
	})
}

func (c *CPU) opStosb() {
	c.runStringOp(false, func() {
		c.Bus.WriteByte(c.diAddr(), byte(c.Regs.AX))
		c.advanceDI(1)
	})
}

func (c *CPU) opStosw() {
	c.runStringOp(false, func() {
		c.Bus.WriteWord(c.diAddr(), c.Regs.AX)
		c.advanceDI(2)
	})
}

func (c *CPU) opLodsb() {
	c.runStringOp(false, func() {
		c.Regs.SetReg8(RegAL, c.Bus.ReadByte(c.siAddr()))
		c.advanceSI(1)
	})
}

func (c *CPU) opLodsw() {
	c.runStringOp(false, func() {
		c.Regs.AX = c.Bus.ReadWord(c.siAddr())
		c.advanceSI(2)
	})
}

func (c *CPU) opCmpsb() {
	c.runStringOp(true, func() {
		a := c.Bus.ReadByte(c.siAddr())
		b := c.Bus.ReadByte(c.diAddr())
		c.subFlags8(a, b, 0)
		c.advanceSI(1)
		c.advanceDI(1)
	})
}

func (c *CPU) opCmpsw() {
	c.runStringOp(true, func() {
		a := c.Bus.ReadWord(c.siAddr())
		b := c.Bus.ReadWord(c.diAddr())
		c.subFlags16(a, b, 0)
		c.advanceSI(2)
		c.advanceDI(2)
	})
}

func (c *CPU) opScasb() {
	c.runStringOp(true, func() {
		b := c.Bus.ReadByte(c.diAddr())
		c.subFlags8(byte(c.Regs.AX), b, 0)
		c.advanceDI(1)
	})
}

func (c *CPU) opScasw() {
	c.runStringOp(true, func() {
		b := c.Bus.ReadWord(c.diAddr())
		c.subFlags16(c.Regs.AX, b, 0)
		c.advanceDI(2)
	})
}
