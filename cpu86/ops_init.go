// ops_init.go - Populates the 256-entry base opcode dispatch table.
//
// Grounded on CPU_X86's initBaseOps in cpu_x86.go: one populator
// method assigning every handled opcode slot, called once from New.
// Unassigned slots stay nil and fall through to Step's invalid-opcode
// path.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

func (c *CPU) initBaseOps() {
	// The eight ALU families sharing the 0x00-0x3D layout: each gets
	// six of its eight opcode slots from the shared dispatch; the
	// remaining two (PUSH/POP segment, or DAA/DAS/AAA/AAS, or a
	// prefix byte intercepted earlier in Step) are wired below.
	aluFamilies := [8]aluOp{aluAdd, aluOr, aluAdc, aluSbb, aluAnd, aluSub, aluXor, aluCmp}
	for i, op := range aluFamilies {
		op := op
		base := byte(i * 8)
		c.baseOps[base+0] = func(c *CPU) { c.aluRm8R8(op) }
		c.baseOps[base+1] = func(c *CPU) { c.aluRm16R16(op) }
		c.baseOps[base+2] = func(c *CPU) { c.aluR8Rm8(op) }
		c.baseOps[base+3] = func(c *CPU) { c.aluR16Rm16(op) }
		c.baseOps[base+4] = func(c *CPU) { c.aluALImm8(op) }
		c.baseOps[base+5] = func(c *CPU) { c.aluAXImm16(op) }
	}

	c.baseOps[0x06] = c.opPushSeg(SegES)
	c.baseOps[0x07] = c.opPopSeg(SegES)
	c.baseOps[0x0E] = c.opPushSeg(SegCS)
	// 0x0F (POP CS) is an undocumented 8086 quirk with no defined
	// successor behavior on later chips; left unimplemented like any
	// other invalid opcode.
	c.baseOps[0x16] = c.opPushSeg(SegSS)
	c.baseOps[0x17] = c.opPopSeg(SegSS)
	c.baseOps[0x1E] = c.opPushSeg(SegDS)
	c.baseOps[0x1F] = c.opPopSeg(SegDS)
	c.baseOps[0x27] = (*CPU).opDaa
	c.baseOps[0x2F] = (*CPU).opDas
	c.baseOps[0x37] = (*CPU).opAaa
	c.baseOps[0x3F] = (*CPU).opAas

	// INC/DEC r16 and PUSH/POP r16, 0x40-0x5F.
	for r := byte(0); r < 8; r++ {
		r := r
		c.baseOps[0x40+r] = c.opIncReg16(r)
		c.baseOps[0x48+r] = c.opDecReg16(r)
		c.baseOps[0x50+r] = c.opPushReg16(r)
		c.baseOps[0x58+r] = c.opPopReg16(r)
	}

	// Jcc, 0x70-0x7F.
	for n := byte(0); n < 16; n++ {
		c.baseOps[0x70+n] = c.opJcc(n)
	}

	c.baseOps[0x80] = (*CPU).opGrp1Rm8Imm8
	c.baseOps[0x81] = (*CPU).opGrp1Rm16Imm16
	c.baseOps[0x82] = (*CPU).opGrp1Rm8Imm8 // documented alias of 0x80
	c.baseOps[0x83] = (*CPU).opGrp1Rm16Imm8Sx
	c.baseOps[0x84] = (*CPU).opTestRm8R8
	c.baseOps[0x85] = (*CPU).opTestRm16R16
	c.baseOps[0x86] = (*CPU).opXchgRm8R8
	c.baseOps[0x87] = (*CPU).opXchgRm16R16
	c.baseOps[0x88] = (*CPU).opMovRm8R8
	c.baseOps[0x89] = (*CPU).opMovRm16R16
	c.baseOps[0x8A] = (*CPU).opMovR8Rm8
	c.baseOps[0x8B] = (*CPU).opMovR16Rm16
	c.baseOps[0x8C] = (*CPU).opMovRm16Seg
	c.baseOps[0x8D] = (*CPU).opLea
	c.baseOps[0x8E] = (*CPU).opMovSegRm16
	c.baseOps[0x8F] = (*CPU).opPopRm16

	for r := byte(1); r < 8; r++ {
		c.baseOps[0x90+r] = c.opXchgAXReg16(r)
	}
	c.baseOps[0x90] = func(c *CPU) {} // NOP (XCHG AX,AX is a no-op)

	c.baseOps[0x98] = (*CPU).opCbw
	c.baseOps[0x99] = (*CPU).opCwd
	c.baseOps[0x9A] = (*CPU).opCallFar
	c.baseOps[0x9B] = (*CPU).opWait
	c.baseOps[0x9C] = (*CPU).opPushf
	c.baseOps[0x9D] = (*CPU).opPopf
	c.baseOps[0x9E] = (*CPU).opSahf
	c.baseOps[0x9F] = (*CPU).opLahf

	c.baseOps[0xA0] = (*CPU).opMovALMoffs8
	c.baseOps[0xA1] = (*CPU).opMovAXMoffs16
	c.baseOps[0xA2] = (*CPU).opMovMoffs8AL
	c.baseOps[0xA3] = (*CPU).opMovMoffs16AX
	c.baseOps[0xA4] = (*CPU).opMovsb
	c.baseOps[0xA5] = (*CPU).opMovsw
	c.baseOps[0xA6] = (*CPU).opCmpsb
	c.baseOps[0xA7] = (*CPU).opCmpsw
	c.baseOps[0xA8] = (*CPU).opTestALImm8
	c.baseOps[0xA9] = (*CPU).opTestAXImm16
	c.baseOps[0xAA] = (*CPU).opStosb
	c.baseOps[0xAB] = (*CPU).opStosw
	c.baseOps[0xAC] = (*CPU).opLodsb
	c.baseOps[0xAD] = (*CPU).opLodsw
	c.baseOps[0xAE] = (*CPU).opScasb
	c.baseOps[0xAF] = (*CPU).opScasw

	for r := byte(0); r < 8; r++ {
		c.baseOps[0xB0+r] = c.opMovR8Imm8(r)
		c.baseOps[0xB8+r] = c.opMovR16Imm16(r)
	}

	c.baseOps[0xC2] = (*CPU).opRetImm16
	c.baseOps[0xC3] = (*CPU).opRet
	c.baseOps[0xC4] = (*CPU).opLes
	c.baseOps[0xC5] = (*CPU).opLds
	c.baseOps[0xC6] = (*CPU).opMovRm8Imm8
	c.baseOps[0xC7] = (*CPU).opMovRm16Imm16
	c.baseOps[0xCA] = (*CPU).opRetFarImm16
	c.baseOps[0xCB] = (*CPU).opRetFar
	c.baseOps[0xCC] = c.opInt(3)
	c.baseOps[0xCD] = (*CPU).opIntImm8
	c.baseOps[0xCE] = (*CPU).opInto
	c.baseOps[0xCF] = (*CPU).opIret

	c.baseOps[0xD0] = func(c *CPU) { c.opGrp2Rm8(1) }
	c.baseOps[0xD1] = func(c *CPU) { c.opGrp2Rm16(1) }
	c.baseOps[0xD2] = func(c *CPU) { c.opGrp2Rm8(byte(c.Regs.CX)) }
	c.baseOps[0xD3] = func(c *CPU) { c.opGrp2Rm16(byte(c.Regs.CX)) }
	c.baseOps[0xD4] = (*CPU).opAam
	c.baseOps[0xD5] = (*CPU).opAad
	c.baseOps[0xD7] = (*CPU).opXlat
	for op := byte(0xD8); op <= 0xDF; op++ {
		c.baseOps[op] = (*CPU).opEsc
	}

	c.baseOps[0xE0] = (*CPU).opLoopNE
	c.baseOps[0xE1] = (*CPU).opLoopE
	c.baseOps[0xE2] = (*CPU).opLoop
	c.baseOps[0xE3] = (*CPU).opJcxz
	c.baseOps[0xE4] = (*CPU).opInALImm8
	c.baseOps[0xE5] = (*CPU).opInAXImm8
	c.baseOps[0xE6] = (*CPU).opOutImm8AL
	c.baseOps[0xE7] = (*CPU).opOutImm8AX
	c.baseOps[0xE8] = (*CPU).opCallNear
	c.baseOps[0xE9] = (*CPU).opJmpNear
	c.baseOps[0xEA] = (*CPU).opJmpFar
	c.baseOps[0xEB] = (*CPU).opJmpShort
	c.baseOps[0xEC] = (*CPU).opInALDX
	c.baseOps[0xED] = (*CPU).opInAXDX
	c.baseOps[0xEE] = (*CPU).opOutDXAL
	c.baseOps[0xEF] = (*CPU).opOutDXAX

	c.baseOps[0xF4] = (*CPU).opHlt
	c.baseOps[0xF5] = (*CPU).opCmc
	c.baseOps[0xF6] = (*CPU).opGrp3Rm8
	c.baseOps[0xF7] = (*CPU).opGrp3Rm16
	c.baseOps[0xF8] = (*CPU).opClc
	c.baseOps[0xF9] = (*CPU).opStc
	c.baseOps[0xFA] = (*CPU).opCli
	c.baseOps[0xFB] = (*CPU).opSti
	c.baseOps[0xFC] = (*CPU).opCld
	c.baseOps[0xFD] = (*CPU).opStd
	c.baseOps[0xFE] = func(c *CPU) {
		rm, regField := c.decodeModRM()
		c.opIncDecRm8(rm, regField == 0)
	}
	c.baseOps[0xFF] = (*CPU).opGrp5Rm16
}
