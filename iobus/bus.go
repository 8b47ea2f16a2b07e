// bus.go - Physical memory and port I/O routing
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

// Package iobus implements Bus, the routing layer between the CPU and
// both physical memory (MemoryArea) and port-mapped I/O
// (PortRegistration). Grounded on IntuitionEngine's machine_bus.go
// (region table, first-match routing order) and the dispatch-by-range
// shape of X86BusAdapter.Read/Write in cpu_x86_runner.go, but reworked
// around independently owned memory.Area values instead of one shared
// 32MB block, since the 8086 memory map is a handful of differently
// permissioned regions rather than one flat space with I/O carve-outs.
package iobus

import (
	"fmt"

	"github.com/zaynotley/xt8086emu/memory"
)

// PortRegistration binds one 16-bit I/O port to a pair of callbacks.
// Read takes no arguments and returns a byte; Write takes a byte and
// returns nothing. Both are invoked synchronously from within an
// IN/OUT opcode handler and must not block or re-enter the CPU.
type PortRegistration struct {
	Port  uint16
	Read  func() byte
	Write func(byte)
}

// Bus owns an ordered collection of memory areas and a table of port
// registrations. Area lookup is a linear scan over the attached
// regions in registration order — the spec calls this out explicitly
// as optimal for the 3-6 regions the 8086 memory map ever has; a
// page-table lookup (as IntuitionEngine's 32MB machine_bus.go uses)
// would be solving a problem this address space doesn't have.
type Bus struct {
	areas []*memory.Area
	ports map[uint16]PortRegistration
	log   Logger
}

// New creates an empty bus. Attach areas and ports before the first
// CPU.Step.
func New(log Logger) *Bus {
	if log == nil {
		log = nopLogger{}
	}
	return &Bus{
		ports: make(map[uint16]PortRegistration),
		log:   log,
	}
}

// AttachArea adds area to the routing table. The caller is responsible
// for ensuring areas attached to the same bus do not overlap; Bus does
// not enforce this itself (matching the spec's stated invariant, which
// is a construction-time contract, not a runtime check on every access).
func (b *Bus) AttachArea(area *memory.Area) {
	b.areas = append(b.areas, area)
}

// AttachPort registers a port. It refuses (and logs) a second
// registration for the same port number — each port may be registered
// at most once.
func (b *Bus) AttachPort(reg PortRegistration) bool {
	if _, exists := b.ports[reg.Port]; exists {
		b.log.Warnf("iobus: port 0x%04X already registered, refusing duplicate", reg.Port)
		return false
	}
	b.ports[reg.Port] = reg
	return true
}

// warn logs a structured Fault through the bus's Logger.
func (b *Bus) warn(f Fault) {
	b.log.Warnf("iobus: %s", f)
}

// areaFor returns the first attached area covering addr, or nil.
func (b *Bus) areaFor(addr uint32) *memory.Area {
	for _, a := range b.areas {
		if a.Contains(addr) {
			return a
		}
	}
	return nil
}

// ReadByte reads one byte from physical memory. An access to an
// unmapped address is a runtime-soft fault: it is logged and returns
// 0, matching 8086 open-bus behavior.
func (b *Bus) ReadByte(addr uint32) byte {
	area := b.areaFor(addr)
	if area == nil {
		b.warn(Fault{FaultUnmappedRead, fmt.Sprintf("read from unmapped address 0x%05X", addr)})
		return 0
	}
	v, err := area.Read(addr - area.Start)
	if err != nil {
		b.warn(Fault{FaultUnreadableArea, fmt.Sprintf("read from %q at 0x%05X: %v", area.Name, addr, err)})
		return 0
	}
	return v
}

// WriteByte writes one byte to physical memory. A write to an unmapped
// or unwritable address is dropped and logged.
func (b *Bus) WriteByte(addr uint32, v byte) {
	area := b.areaFor(addr)
	if area == nil {
		b.warn(Fault{FaultUnmappedWrite, fmt.Sprintf("write to unmapped address 0x%05X", addr)})
		return
	}
	if err := area.Write(addr-area.Start, v); err != nil {
		b.warn(Fault{FaultUnwritableArea, fmt.Sprintf("write to %q at 0x%05X: %v", area.Name, addr, err)})
	}
}

// ReadWord reads a little-endian 16-bit value as two independent byte
// accesses. The 8086 has no alignment constraint, so this never
// special-cases a straddling boundary.
func (b *Bus) ReadWord(addr uint32) uint16 {
	lo := b.ReadByte(addr)
	hi := b.ReadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord writes a little-endian 16-bit value as two independent
// byte accesses: low byte to addr, high byte to addr+1.
func (b *Bus) WriteWord(addr uint32, v uint16) {
	b.WriteByte(addr, byte(v))
	b.WriteByte(addr+1, byte(v>>8))
}

// PortReadByte dispatches to the registered read callback for port, or
// logs and returns 0 (open bus) if nothing is registered there.
func (b *Bus) PortReadByte(port uint16) byte {
	reg, ok := b.ports[port]
	if !ok || reg.Read == nil {
		b.warn(Fault{FaultUnregisteredPortRead, fmt.Sprintf("read from unregistered port 0x%04X", port)})
		return 0
	}
	return reg.Read()
}

// PortWriteByte dispatches to the registered write callback for port,
// or logs and drops the write if nothing is registered there.
func (b *Bus) PortWriteByte(port uint16, v byte) {
	reg, ok := b.ports[port]
	if !ok || reg.Write == nil {
		b.warn(Fault{FaultUnregisteredPortWrite, fmt.Sprintf("write to unregistered port 0x%04X", port)})
		return
	}
	reg.Write(v)
}

// PortReadWord decomposes a word-sized port read into two byte reads
// on consecutive port numbers (port, port+1), low byte first.
func (b *Bus) PortReadWord(port uint16) uint16 {
	lo := b.PortReadByte(port)
	hi := b.PortReadByte(port + 1)
	return uint16(lo) | uint16(hi)<<8
}

// PortWriteWord decomposes a word-sized port write into two byte
// writes on consecutive port numbers (port, port+1), low byte first.
func (b *Bus) PortWriteWord(port uint16, v uint16) {
	b.PortWriteByte(port, byte(v))
	b.PortWriteByte(port+1, byte(v>>8))
}
