// area_test.go - MemoryArea unit tests
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package memory

import (
	"bytes"
	"errors"
	"testing"
)

func TestArea_ReadWriteRoundTrip(t *testing.T) {
	a := NewArea("ram", 0, 0xFF, true, true)

	if err := a.Write(0x10, 0xAB); err != nil {
		t.Fatalf("Write: unexpected error: %v", err)
	}
	got, err := a.Read(0x10)
	if err != nil {
		t.Fatalf("Read: unexpected error: %v", err)
	}
	if got != 0xAB {
		t.Errorf("Read(0x10) = 0x%02X, want 0xAB", got)
	}

	// Unwritten bytes read back as zero until overwritten.
	if got, _ := a.Read(0x11); got != 0 {
		t.Errorf("Read(0x11) = 0x%02X, want 0x00", got)
	}
}

func TestArea_NotReadable(t *testing.T) {
	a := NewArea("rom", 0, 0xFF, false, true)
	if _, err := a.Read(0); !errors.Is(err, ErrNotReadable) {
		t.Errorf("Read on non-readable area: got %v, want ErrNotReadable", err)
	}
}

func TestArea_NotWritable(t *testing.T) {
	a := NewArea("rom", 0, 0xFF, true, false)
	if err := a.Write(0, 0x42); !errors.Is(err, ErrNotWritable) {
		t.Errorf("Write on non-writable area: got %v, want ErrNotWritable", err)
	}
}

func TestArea_Contains(t *testing.T) {
	a := NewArea("rom", 0xF6000, 0xFFFFF, true, false)
	if !a.Contains(0xFFFF0) {
		t.Error("Contains(0xFFFF0) = false, want true (reset vector inside system ROM)")
	}
	if a.Contains(0xF5FFF) {
		t.Error("Contains(0xF5FFF) = true, want false (just below region)")
	}
	if a.Contains(0x100000) {
		t.Error("Contains(0x100000) = true, want false (just above region)")
	}
}

func TestArea_LoadImage(t *testing.T) {
	a := NewArea("system-rom", 0, 0xFFFF, true, false)
	image := bytes.Repeat([]byte{0x90}, 0x10000)
	image[0xFFF0] = 0xEA // reset vector opcode, far jump

	if err := a.LoadImage(bytes.NewReader(image), 0, len(image)); err != nil {
		t.Fatalf("LoadImage: unexpected error: %v", err)
	}
	if got, _ := a.Read(0xFFF0); got != 0xEA {
		t.Errorf("Read(0xFFF0) after LoadImage = 0x%02X, want 0xEA", got)
	}
}

func TestArea_LoadImageSizeMismatch(t *testing.T) {
	a := NewArea("system-rom", 0, 0xFFFF, true, false)
	tooSmall := bytes.Repeat([]byte{0x00}, 0x1000)
	if err := a.LoadImage(bytes.NewReader(tooSmall), 0, 0x10000); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("LoadImage with wrong size: got %v, want ErrSizeMismatch", err)
	}
}

func TestArea_LoadImageAtOffset(t *testing.T) {
	// A 32KiB BIOS loaded into a 64KiB ROM window, right-aligned so
	// the reset vector still lands at the top of the window.
	a := NewArea("system-rom", 0, 0xFFFF, true, false)
	image := bytes.Repeat([]byte{0x11}, 0x8000)
	image[0x7FF0] = 0xEA

	if err := a.LoadImage(bytes.NewReader(image), 0x8000, len(image)); err != nil {
		t.Fatalf("LoadImage: unexpected error: %v", err)
	}
	if got, _ := a.Read(0xFFF0); got != 0xEA {
		t.Errorf("Read(0xFFF0) = 0x%02X, want 0xEA (reset vector at top of window)", got)
	}
	if got, _ := a.Read(0x7FFF); got != 0 {
		t.Errorf("Read(0x7FFF) = 0x%02X, want 0x00 (below the loaded image)", got)
	}
}
