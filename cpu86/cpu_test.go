// cpu_test.go - End-to-end fetch/decode/execute scenarios.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

import "testing"

func TestReset_SetsResetVectorAndClearsFlags(t *testing.T) {
	c, _ := newTestCPU()
	if c.Regs.CS != 0xFFFF || c.Regs.IP != 0x0000 {
		t.Fatalf("reset CS:IP = %04X:%04X, want FFFF:0000", c.Regs.CS, c.Regs.IP)
	}
	if c.Regs.Flags != 0 {
		t.Fatalf("reset FLAGS = 0x%04X, want 0", c.Regs.Flags)
	}
}

func TestScenario_ResetVectorFarJump(t *testing.T) {
	c, bus := newTestCPU()
	// JMP far F000:0034, sitting at the reset vector FFFF0.
	bus.loadAt(0xFFFF0, 0xEA, 0x34, 0x00, 0x00, 0xF0)

	c.Step()

	if c.Regs.CS != 0xF000 || c.Regs.IP != 0x0034 {
		t.Errorf("CS:IP = %04X:%04X, want F000:0034", c.Regs.CS, c.Regs.IP)
	}
}

func TestScenario_ImmediateLoadThenStore(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0x0000
	c.Regs.DS = 0x0000
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP),
		0xB8, 0x34, 0x12, // MOV AX, 0x1234
		0x89, 0x06, 0x00, 0x20, // MOV [0x2000], AX
	)

	c.Step()
	if c.Regs.AX != 0x1234 {
		t.Fatalf("AX = 0x%04X, want 0x1234", c.Regs.AX)
	}
	c.Step()
	if got := bus.ReadWord(c.physical(c.Regs.DS, 0x2000)); got != 0x1234 {
		t.Errorf("stored word = 0x%04X, want 0x1234", got)
	}
}

func TestScenario_MovRm16SegWithReservedRegFallsBackToES(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.ES = 0xBEEF
	c.Regs.CS = 0xF000 // distinct from ES so a reg&3 mask (misdecoding to CS) would be caught
	// MOV BX, segreg with ModR/M reg=5 (11 101 011): reserved, must fall back to ES.
	bus.loadAt(c.physical(0xF000, 0), 0x8C, 0xEB)

	c.Step()

	if c.Regs.BX != 0xBEEF {
		t.Errorf("BX = 0x%04X, want ES 0xBEEF (reg=5 must fall back to ES, not CS)", c.Regs.BX)
	}
}

func TestScenario_MovSegRm16WithReservedRegFallsBackToES(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.CX = 0xDEAD
	// MOV segreg, CX with ModR/M reg=5 (11 101 001): reserved, must target ES.
	bus.loadAt(c.physical(0xF000, 0), 0x8E, 0xE9)

	c.Step()

	if c.Regs.ES != 0xDEAD {
		t.Errorf("ES = 0x%04X, want 0xDEAD", c.Regs.ES)
	}
	if c.Regs.CS != 0xF000 {
		t.Errorf("CS = 0x%04X, want unchanged 0xF000 (reg=5 must not decode to CS)", c.Regs.CS)
	}
}

func TestScenario_FlagSettingXor(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.AX = 0x5555
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0x31, 0xC0) // XOR AX, AX

	c.Step()

	if c.Regs.AX != 0 {
		t.Fatalf("AX = 0x%04X, want 0", c.Regs.AX)
	}
	if !c.Regs.ZF() {
		t.Error("expected ZF set")
	}
	if !c.Regs.PF() {
		t.Error("expected PF set (zero has even parity)")
	}
	if c.Regs.CF() || c.Regs.OF() {
		t.Error("expected CF and OF clear")
	}
}

func TestScenario_ConditionalBranchTaken(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SetReg8(RegAL, 0x05)
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP),
		0x3C, 0x05, // CMP AL, 5
		0x74, 0x10, // JE +16
	)

	c.Step()
	ipAfterCmp := c.Regs.IP
	c.Step()

	if c.Regs.IP != ipAfterCmp+2+0x10 {
		t.Errorf("branch not taken when it should have been: IP = 0x%04X", c.Regs.IP)
	}
}

func TestScenario_ConditionalBranchNotTaken(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SetReg8(RegAL, 0x06)
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP),
		0x3C, 0x05, // CMP AL, 5
		0x74, 0x10, // JE +16
	)

	c.Step()
	ipAfterCmp := c.Regs.IP
	c.Step()

	if c.Regs.IP != ipAfterCmp+2 {
		t.Errorf("branch taken when it shouldn't have been: IP = 0x%04X", c.Regs.IP)
	}
}

func TestScenario_StringMoveForward(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.DS, c.Regs.ES = 0, 0
	c.Regs.SI, c.Regs.DI = 0x1000, 0x2000
	bus.WriteByte(c.physical(c.Regs.DS, c.Regs.SI), 0x42)
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0xA4) // MOVSB

	c.Step()

	if got := bus.ReadByte(c.physical(c.Regs.ES, 0x2000)); got != 0x42 {
		t.Errorf("MOVSB destination = 0x%02X, want 0x42", got)
	}
	if c.Regs.SI != 0x1001 || c.Regs.DI != 0x2001 {
		t.Errorf("SI/DI after MOVSB = %04X/%04X, want 1001/2001", c.Regs.SI, c.Regs.DI)
	}
}

func TestScenario_StringMoveBackwardWithDF(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SI, c.Regs.DI = 0x1000, 0x2000
	c.Regs.SetFlag(FlagDF, true)
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0xA4) // MOVSB

	c.Step()

	if c.Regs.SI != 0x0FFF || c.Regs.DI != 0x1FFF {
		t.Errorf("SI/DI after MOVSB with DF set = %04X/%04X, want 0FFF/1FFF", c.Regs.SI, c.Regs.DI)
	}
}

func TestScenario_RepMovsCopiesWholeBlock(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SI, c.Regs.DI = 0x1000, 0x2000
	c.Regs.CX = 4
	bus.loadAt(c.physical(0, c.Regs.SI), 0xDE, 0xAD, 0xBE, 0xEF)
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0xF3, 0xA4) // REP MOVSB

	c.Step()

	if c.Regs.CX != 0 {
		t.Errorf("CX after REP MOVSB = %d, want 0", c.Regs.CX)
	}
	for i, want := range []byte{0xDE, 0xAD, 0xBE, 0xEF} {
		if got := bus.ReadByte(c.physical(0, 0x2000+uint16(i))); got != want {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, got, want)
		}
	}
}

func TestScenario_PushPopRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SS, c.Regs.SP = 0x2000, 0x0100
	c.Regs.AX = 0xBEEF
	startSP := c.Regs.SP
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP),
		0x50,       // PUSH AX
		0x5B,       // POP BX
	)

	c.Step()
	c.Step()

	if c.Regs.BX != 0xBEEF {
		t.Errorf("BX = 0x%04X, want 0xBEEF", c.Regs.BX)
	}
	if c.Regs.SP != startSP {
		t.Errorf("SP after push+pop = 0x%04X, want back to 0x%04X", c.Regs.SP, startSP)
	}
}

func TestScenario_XchgTwiceIsIdentity(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.AX, c.Regs.BX = 0x1111, 0x2222
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0x93, 0x93) // XCHG AX,BX twice

	c.Step()
	if c.Regs.AX != 0x2222 || c.Regs.BX != 0x1111 {
		t.Fatalf("after first XCHG: AX=0x%04X BX=0x%04X", c.Regs.AX, c.Regs.BX)
	}
	c.Step()
	if c.Regs.AX != 0x1111 || c.Regs.BX != 0x2222 {
		t.Errorf("after second XCHG: AX=0x%04X BX=0x%04X, want restored", c.Regs.AX, c.Regs.BX)
	}
}

func TestScenario_IncAtSignedBoundarySetsOverflow(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.AX = 0x7FFF
	c.Regs.SetFlag(FlagCF, true) // INC must not disturb this
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0x40) // INC AX

	c.Step()

	if c.Regs.AX != 0x8000 {
		t.Fatalf("AX = 0x%04X, want 0x8000", c.Regs.AX)
	}
	if !c.Regs.OF() {
		t.Error("expected OF set at the INC overflow boundary")
	}
	if !c.Regs.CF() {
		t.Error("INC must not clear a pre-existing CF")
	}
}

func TestScenario_DivideByZeroFaultsToVectorZero(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	c.Regs.SS, c.Regs.SP = 0x1000, 0x0100
	c.Regs.AX = 0x0064
	c.Regs.CX = 0 // divisor
	bus.WriteWord(0*4, 0x9999)   // IVT[0].offset
	bus.WriteWord(0*4+2, 0x8888) // IVT[0].segment
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0xF7, 0xF1) // DIV CX

	c.Step()

	if c.Regs.CS != 0x8888 || c.Regs.IP != 0x9999 {
		t.Errorf("CS:IP after divide fault = %04X:%04X, want 8888:9999", c.Regs.CS, c.Regs.IP)
	}
}

func TestEffectiveAddress_BaseIndexWrapsAt16Bits(t *testing.T) {
	c, _ := newTestCPU()
	c.Regs.BX, c.Regs.SI = 0x0001, 0xFFFF
	c.Regs.DS = 0

	addr := c.effectiveAddress(0, 0) // BX+SI
	if addr != c.physical(0, 0x0000) {
		t.Errorf("BX+SI wraparound address = 0x%05X, want 0", addr)
	}
}

func TestPhysical_SegmentOffsetWrapsAt20Bits(t *testing.T) {
	c, _ := newTestCPU()
	got := c.physical(0xFFFF, 0xFFFF)
	if got != 0xFFEF {
		t.Errorf("physical(FFFF:FFFF) = 0x%05X, want 0x0FFEF", got)
	}
}

func TestInvalidOpcode_HaltsAndLogs(t *testing.T) {
	c, bus := newTestCPU()
	c.Regs.CS, c.Regs.IP = 0xF000, 0
	log := &quietLogger{}
	c.log = log
	bus.loadAt(c.physical(c.Regs.CS, c.Regs.IP), 0x0F) // POP CS: left unimplemented

	c.Step()

	if !c.Halted {
		t.Error("expected the core to halt on an invalid opcode")
	}
	if len(log.lines) == 0 {
		t.Error("expected an invalid-opcode diagnostic to be logged")
	}
}
