// ops_flags.go - Flag-bit instructions: CLC/STC/CMC/CLI/STI/CLD/STD,
// LAHF/SAHF, PUSHF/POPF.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) opClc() { c.Regs.SetFlag(FlagCF, false) }
func (c *CPU) opStc() { c.Regs.SetFlag(FlagCF, true) }
func (c *CPU) opCmc() { c.Regs.SetFlag(FlagCF, !c.Regs.CF()) }
func (c *CPU) opCli() { c.Regs.SetFlag(FlagIF, false) }
func (c *CPU) opSti() { c.Regs.SetFlag(FlagIF, true) }
func (c *CPU) opCld() { c.Regs.SetFlag(FlagDF, false) }
func (c *CPU) opStd() { c.Regs.SetFlag(FlagDF, true) }

// LAHF/SAHF move the low byte of FLAGS (SF:ZF:0:AF:0:PF:1:CF) to and
// from AH, per spec.md's supplemental-instruction list.
func (c *CPU) opLahf() {
	c.Regs.SetReg8(RegAH, byte(c.Regs.Flags)&0xD5|0x02)
}

func (c *CPU) opSahf() {
	ah := c.Regs.Reg8(RegAH)
	const mask = FlagSF | FlagZF | FlagAF | FlagPF | FlagCF
	c.Regs.Flags = c.Regs.Flags&^uint16(mask) | uint16(ah)&mask
}

func (c *CPU) opPushf() {
	c.pushWord(c.Regs.Flags)
}

func (c *CPU) opPopf() {
	c.Regs.Flags = c.popWord()
}
