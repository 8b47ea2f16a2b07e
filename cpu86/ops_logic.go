// ops_logic.go - TEST; AND/OR/XOR ride the shared ALU dispatch in
// ops_arith.go and have no handlers of their own here.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

// TEST computes AND's flags without storing the result, per spec.md
// §4.2's TEST entry.

func (c *CPU) opTestRm8R8() {
	rm, reg := c.decodeModRM()
	c.setFlagsLogic8(c.readRM8(rm) & c.Regs.Reg8(reg))
}

func (c *CPU) opTestRm16R16() {
	rm, reg := c.decodeModRM()
	c.setFlagsLogic16(c.readRM16(rm) & c.Regs.Reg16(reg))
}

func (c *CPU) opTestALImm8() {
	imm := c.fetch8()
	c.setFlagsLogic8(byte(c.Regs.AX) & imm)
}

func (c *CPU) opTestAXImm16() {
	imm := c.fetch16()
	c.setFlagsLogic16(c.Regs.AX & imm)
}
