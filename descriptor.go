// Copyright 2024 The ofl-lpc1756-is25lq040b Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Static flash device descriptor consumed by the host probe.
package ofl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Descriptor protocol version understood by the host. Do not modify.
const DriverVersion uint16 = 0x0101

// Maximum number of sector ranges in the encoded descriptor, sentinel
// included.
const MaxSectorRanges = 4

//go:generate stringer -type DeviceType
type DeviceType uint8

const (
	DeviceUnknown DeviceType = iota
	DeviceOnChip
	DeviceExternal8Bit
	DeviceExternal16Bit
	DeviceExternal32Bit
	DeviceExternalSpi
)

// A run of equally sized erase sectors.
type SectorRange struct {
	// Sector size in bytes. Power of two.
	Size uint32
	// Number of consecutive sectors of this size.
	Count uint32
}

// Terminates the sector table in the encoded descriptor.
var endOfSectors = SectorRange{0xFFFFFFFF, 0xFFFFFFFF}

// Describes the target device to the host. Created once at load time and
// never mutated.
type DeviceDescriptor struct {
	Version    uint16
	Name       string
	Type       DeviceType
	BaseAddr   Address
	TotalSize  uint32
	PageSize   uint32
	Reserved   uint32
	BlankValue byte
	// Advisory timeouts in msec. The host uses these to bound its own
	// waits; the driver itself polls without an upper bound.
	ProgramTimeoutMs uint32
	EraseTimeoutMs   uint32
	// Ordered sector layout, lowest offset first.
	Sectors []SectorRange
}

const descNameLen = 128

func (d *DeviceDescriptor) Validate() error {
	if len(d.Name) >= descNameLen {
		return fmt.Errorf("device name %q longer than %v bytes", d.Name, descNameLen-1)
	}
	if d.PageSize == 0 || bits.OnesCount32(d.PageSize) != 1 {
		return fmt.Errorf("page size %v is not a power of two", d.PageSize)
	}
	if len(d.Sectors) == 0 {
		return fmt.Errorf("empty sector table")
	}
	if len(d.Sectors) > MaxSectorRanges-1 {
		return fmt.Errorf("sector table has %v ranges, max %v", len(d.Sectors), MaxSectorRanges-1)
	}
	var total uint64
	for _, s := range d.Sectors {
		if s.Size == 0 || bits.OnesCount32(s.Size) != 1 {
			return fmt.Errorf("sector size %v is not a power of two", s.Size)
		}
		if s.Count == 0 {
			return fmt.Errorf("empty sector range of size %v", s.Size)
		}
		total += uint64(s.Size) * uint64(s.Count)
	}
	if total != uint64(d.TotalSize) {
		return fmt.Errorf("sector table covers %v bytes, device has %v", total, d.TotalSize)
	}
	return nil
}

// Total number of erase sectors on the device.
func (d *DeviceDescriptor) SectorCount() uint32 {
	var n uint32
	for _, s := range d.Sectors {
		n += s.Count
	}
	return n
}

// Reports whether all sectors share one size, enabling multi-sector
// erase in a single loader call.
func (d *DeviceDescriptor) Uniform() bool {
	return len(d.Sectors) == 1
}

// Returns the start offset and size of the sector enclosing the native
// offset addr.
func (d *DeviceDescriptor) SectorAt(addr Address) (start Address, size uint32, err error) {
	if uint32(addr) >= d.TotalSize {
		return 0, 0, fmt.Errorf("offset 0x%X is beyond device size 0x%X", uint32(addr), d.TotalSize)
	}
	var base uint32
	for _, s := range d.Sectors {
		span := s.Size * s.Count
		if uint32(addr) < base+span {
			off := (uint32(addr) - base) &^ (s.Size - 1)
			return Address(base + off), s.Size, nil
		}
		base += span
	}
	return 0, 0, fmt.Errorf("no sector found for offset 0x%X", uint32(addr))
}

// Reports whether [addr, addr+size) lies within the device.
func (d *DeviceDescriptor) Contains(addr Address, size uint32) bool {
	return uint64(addr)+uint64(size) <= uint64(d.TotalSize)
}

// Encodes the descriptor into the fixed little-endian record the host
// scans for: version, name[128], type, base address, total size, page
// size, reserved, blank value, program timeout, erase timeout, sector
// table padded to MaxSectorRanges entries with the end marker after the
// last real range.
func (d *DeviceDescriptor) EncodeBinary() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("descriptor validation failed: %v", err)
	}
	var name [descNameLen]byte
	copy(name[:], d.Name)

	buf := new(bytes.Buffer)
	fields := []interface{}{
		d.Version,
		name,
		uint8(d.Type),
		uint32(d.BaseAddr),
		d.TotalSize,
		d.PageSize,
		d.Reserved,
		d.BlankValue,
		d.ProgramTimeoutMs,
		d.EraseTimeoutMs,
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return nil, fmt.Errorf("binary.Write failed: %v", err)
		}
	}

	sectors := make([]SectorRange, 0, MaxSectorRanges)
	sectors = append(sectors, d.Sectors...)
	sectors = append(sectors, endOfSectors)
	for len(sectors) < MaxSectorRanges {
		sectors = append(sectors, SectorRange{})
	}
	if err := binary.Write(buf, binary.LittleEndian, sectors); err != nil {
		return nil, fmt.Errorf("binary.Write sector table failed: %v", err)
	}
	return buf.Bytes(), nil
}
