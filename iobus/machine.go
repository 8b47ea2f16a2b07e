// machine.go - Default 8086/PC-compatible memory map
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package iobus

import (
	"fmt"

	"github.com/zaynotley/xt8086emu/memory"
)

// Default memory map region boundaries, per spec.md §4.2.
const (
	RAMStart = 0x00000
	RAMEnd   = 0x9FFFF

	GraphicsApertureStart = 0xA0000
	GraphicsApertureEnd   = 0xBFFFF

	ExpansionROMStart = 0xC0000
	ExpansionROMEnd   = 0xEFFFF

	SystemROMStart = 0xF6000
	SystemROMEnd   = 0xFFFFF

	// ResetVector is the fixed physical address the 8086 fetches its
	// first instruction from after reset: CS:IP = FFFF:0000.
	ResetVector = 0xFFFF0
)

// SystemROMSize is the extent of the system ROM window: 40KiB, sized
// to hold a GLaBIOS-class image with no load offset needed.
const SystemROMSize = SystemROMEnd - SystemROMStart + 1

// NewDefaultMachine builds the bus described in spec.md §4.2: RAM,
// graphics aperture, expansion ROM, and system ROM, then loads the
// BIOS image into system ROM right-aligned so the reset vector at
// physical 0xFFFF0 falls within the image, per §6's BIOS image format
// contract. biosOffset lets a BIOS smaller than the 40KiB window be
// placed so its own reset vector still lands correctly; pass 0 for a
// full 40KiB image.
//
// Grounded on the constructor family in cpu_x86_runner.go
// (NewX86BusAdapter/NewX86BusAdapterWithVGA/NewX86BusAdapterWithVoodoo)
// that assembles a ready-to-run bus from named pieces.
func NewDefaultMachine(log Logger, biosPath string, biosOffset int) (*Bus, error) {
	bus := New(log)

	bus.AttachArea(memory.NewArea("ram", RAMStart, RAMEnd, true, true))
	bus.AttachArea(memory.NewArea("graphics-aperture", GraphicsApertureStart, GraphicsApertureEnd, true, true))
	bus.AttachArea(memory.NewArea("expansion-rom", ExpansionROMStart, ExpansionROMEnd, true, false))

	systemROM := memory.NewArea("system-rom", SystemROMStart, SystemROMEnd, true, false)
	bus.AttachArea(systemROM)

	if biosOffset < 0 || biosOffset >= SystemROMSize {
		return nil, fmt.Errorf("iobus: bios offset 0x%X out of range for %d-byte system ROM window", biosOffset, SystemROMSize)
	}
	wantSize := SystemROMSize - biosOffset
	if err := memory.LoadImageFile(systemROM, biosPath, uint32(biosOffset), wantSize); err != nil {
		return nil, fmt.Errorf("iobus: loading BIOS image %q: %w", biosPath, err)
	}

	return bus, nil
}
