// ops_misc.go - HLT, software interrupts, and the two instruction
// classes this core deliberately treats as no-ops: WAIT (no
// coprocessor to synchronize with) and ESC (no coprocessor to hand
// the operand to). Both still consume their encoded bytes so the
// instruction stream stays in sync, matching how a real machine with
// no FPU attached behaves — the bus simply doesn't respond.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) opHlt() {
	c.Halted = true
	c.State = StateHalted
}

func (c *CPU) opInt(vector byte) func(*CPU) {
	return func(c *CPU) {
		c.Interrupt(vector)
	}
}

func (c *CPU) opIntImm8() {
	vector := c.fetch8()
	c.Interrupt(vector)
}

// opInto raises INT 4 only if OF is set, per spec.md's
// supplemental-instruction list.
func (c *CPU) opInto() {
	if c.Regs.OF() {
		c.Interrupt(4)
	}
}

func (c *CPU) opIret() {
	c.IRet()
}

func (c *CPU) opWait() {
	// No coprocessor is modeled; nothing to synchronize with.
}

// opEsc decodes and discards a coprocessor ModR/M operand.
func (c *CPU) opEsc() {
	c.decodeModRM()
}
