// flags.go - FLAGS computation for arithmetic and logic results
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

// parityTable is a precomputed even-parity lookup for every possible
// low byte of a result, per spec.md §4.3.6 ("An 8-bit parity table
// must be precomputed"). parityTable[v] is true when v has an even
// number of set bits.
var parityTable [256]bool

func init() {
	for v := 0; v < 256; v++ {
		bits := 0
		for b := v; b != 0; b &= b - 1 {
			bits++
		}
		parityTable[v] = bits%2 == 0
	}
}

func parity(v byte) bool {
	return parityTable[v]
}

// setFlagsLogic8 sets flags after an 8-bit AND/OR/XOR/TEST: CF and OF
// are always cleared, AF is left undefined (untouched, per spec.md
// §4.3.6's "cleared by AND/OR/XOR/TEST" for CF/OF only).
func (c *CPU) setFlagsLogic8(result byte) {
	c.Regs.SetFlag(FlagCF, false)
	c.Regs.SetFlag(FlagOF, false)
	c.Regs.SetFlag(FlagZF, result == 0)
	c.Regs.SetFlag(FlagSF, result&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(result))
}

// setFlagsLogic16 is setFlagsLogic8's 16-bit counterpart.
func (c *CPU) setFlagsLogic16(result uint16) {
	c.Regs.SetFlag(FlagCF, false)
	c.Regs.SetFlag(FlagOF, false)
	c.Regs.SetFlag(FlagZF, result == 0)
	c.Regs.SetFlag(FlagSF, result&0x8000 != 0)
	c.Regs.SetFlag(FlagPF, parity(byte(result)))
}

// incDecFlags8 updates SF/ZF/AF/PF/OF for INC/DEC, which — unlike
// ADD/SUB — never touch CF. OF is set iff the pre-value was the
// operation's single overflow-triggering value (0x7F for INC, 0x80
// for DEC), per spec.md §4.3.6.
func (c *CPU) incDecFlags8(pre, result byte, isInc bool) {
	c.Regs.SetFlag(FlagZF, result == 0)
	c.Regs.SetFlag(FlagSF, result&0x80 != 0)
	c.Regs.SetFlag(FlagPF, parity(result))
	if isInc {
		c.Regs.SetFlag(FlagOF, pre == 0x7F)
		c.Regs.SetFlag(FlagAF, pre&0x0F == 0x0F)
	} else {
		c.Regs.SetFlag(FlagOF, pre == 0x80)
		c.Regs.SetFlag(FlagAF, pre&0x0F == 0x00)
	}
}

// incDecFlags16 is incDecFlags8's 16-bit counterpart.
func (c *CPU) incDecFlags16(pre, result uint16, isInc bool) {
	c.Regs.SetFlag(FlagZF, result == 0)
	c.Regs.SetFlag(FlagSF, result&0x8000 != 0)
	c.Regs.SetFlag(FlagPF, parity(byte(result)))
	if isInc {
		c.Regs.SetFlag(FlagOF, pre == 0x7FFF)
		c.Regs.SetFlag(FlagAF, pre&0x0F == 0x0F)
	} else {
		c.Regs.SetFlag(FlagOF, pre == 0x8000)
		c.Regs.SetFlag(FlagAF, pre&0x0F == 0x00)
	}
}
