// registers_test.go
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package cpu86

import "testing"

func TestRegisterFile_8BitAliasing(t *testing.T) {
	var r RegisterFile
	r.SetReg16(RegAX, 0x1234)
	if got := r.Reg8(RegAL); got != 0x34 {
		t.Errorf("AL = 0x%02X, want 0x34", got)
	}
	if got := r.Reg8(RegAH); got != 0x12 {
		t.Errorf("AH = 0x%02X, want 0x12", got)
	}

	r.SetReg8(RegAL, 0xFF)
	if got := r.Reg16(RegAX); got != 0x12FF {
		t.Errorf("AX after SetReg8(AL) = 0x%04X, want 0x12FF", got)
	}

	r.SetReg8(RegAH, 0x00)
	if got := r.Reg16(RegAX); got != 0x00FF {
		t.Errorf("AX after SetReg8(AH) = 0x%04X, want 0x00FF", got)
	}
}

func TestRegisterFile_SegmentOutOfRangeFallsBackToES(t *testing.T) {
	var r RegisterFile
	r.SetSeg(SegES, 0xBEEF)
	if got := r.Seg(Segment(7)); got != 0xBEEF {
		t.Errorf("Seg(7) = 0x%04X, want fallback to ES 0xBEEF", got)
	}
}

func TestRegisterFile_FlagRoundTrip(t *testing.T) {
	var r RegisterFile
	r.SetFlag(FlagCF, true)
	r.SetFlag(FlagZF, true)
	if !r.CF() || !r.ZF() {
		t.Fatal("expected CF and ZF set")
	}
	if r.SF() || r.OF() {
		t.Fatal("expected SF and OF clear")
	}
	r.SetFlag(FlagCF, false)
	if r.CF() {
		t.Fatal("expected CF clear after SetFlag(false)")
	}
	if !r.ZF() {
		t.Fatal("clearing CF should not disturb ZF")
	}
}
