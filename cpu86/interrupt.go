// interrupt.go - Software and external interrupt delivery
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

// Interrupt performs the standard 8086 interrupt-entry sequence for
// vector: push FLAGS, push CS, push IP, clear IF and TF, then load
// CS:IP from the four-byte vector table entry at vector*4 (spec.md
// §4.3.7). It's used for INT n, INTO, the divide-fault path, and by
// Step to deliver a pending external IRQ.
func (c *CPU) Interrupt(vector byte) {
	c.pushWord(c.Regs.Flags)
	c.pushWord(c.Regs.CS)
	c.pushWord(c.Regs.IP)

	c.Regs.SetFlag(FlagIF, false)
	c.Regs.SetFlag(FlagTF, false)

	addr := uint32(vector) * 4
	c.Regs.IP = c.Bus.ReadWord(addr)
	c.Regs.CS = c.Bus.ReadWord(addr + 2)
}

// IRet reverses Interrupt: pop IP, CS, then FLAGS.
func (c *CPU) IRet() {
	c.Regs.IP = c.popWord()
	c.Regs.CS = c.popWord()
	c.Regs.Flags = c.popWord()
}

// RaiseIRQ records an external interrupt request against vector, to be
// delivered at the top of the next Step where IF is set. Only one IRQ
// can be pending at a time; a caller wanting priority among multiple
// sources must arbitrate before calling this, since there's no PIC
// modeled here (spec.md's Non-goals exclude interrupt-controller
// chips).
func (c *CPU) RaiseIRQ(vector byte) {
	c.irqPending = true
	c.irqVector = vector
}
