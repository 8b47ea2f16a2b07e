// ops_io.go - IN/OUT, immediate-addressed or DX-addressed.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) opInALImm8() {
	port := uint16(c.fetch8())
	c.Regs.SetReg8(RegAL, c.Bus.PortReadByte(port))
}

func (c *CPU) opInAXImm8() {
	port := uint16(c.fetch8())
	c.Regs.AX = c.Bus.PortReadWord(port)
}

func (c *CPU) opOutImm8AL() {
	port := uint16(c.fetch8())
	c.Bus.PortWriteByte(port, byte(c.Regs.AX))
}

func (c *CPU) opOutImm8AX() {
	port := uint16(c.fetch8())
	c.Bus.PortWriteWord(port, c.Regs.AX)
}

func (c *CPU) opInALDX() {
	c.Regs.SetReg8(RegAL, c.Bus.PortReadByte(c.Regs.DX))
}

func (c *CPU) opInAXDX() {
	c.Regs.AX = c.Bus.PortReadWord(c.Regs.DX)
}

func (c *CPU) opOutDXAL() {
	c.Bus.PortWriteByte(c.Regs.DX, byte(c.Regs.AX))
}

func (c *CPU) opOutDXAX() {
	c.Bus.PortWriteWord(c.Regs.DX, c.Regs.AX)
}
