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

// Drives an ISSI IS25LQ040B 4Mbit serial NOR flash over the SPI bus.
package is25lq040b

import (
	"bytes"
	"fmt"
	"time"

	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/driver"

	"github.com/golang/glog"
)

// Implements driver.DriverInterface.
type Device struct {
	bus ofl.SpiBusInterface
	// Delay primitive. Blocks the calling context for the given
	// duration.
	sleep func(time.Duration)
	// Diagnostic only; observable behavior does not depend on it.
	polls uint64
}

//go:generate stringer -type Opcode
type Opcode uint8

const (
	OpPageProgram      Opcode = 0x02
	OpReadData         Opcode = 0x03
	OpReadStatus       Opcode = 0x05
	OpWriteEnable      Opcode = 0x06
	OpSectorErase      Opcode = 0x20
	OpReadJedecID      Opcode = 0x9F
	OpReleasePowerDown Opcode = 0xAB
	OpChipErase        Opcode = 0xC7
)

const (
	// PageSize = 1 << pageShift.
	pageShift = 8
	PageSize  = 1 << pageShift

	// SectorSize = 1 << sectorShift.
	sectorShift = 12
	SectorSize  = 1 << sectorShift

	FlashSize = 0x00080000

	// Host-mapped addresses are normalized into the device native
	// offset range with this mask.
	AddrMask ofl.Address = 0x0FFFFFFF

	BlankValue = 0xFF
)

const (
	busMode    = ofl.SpiMode3
	busClockHz = 1_000_000

	// Fixed delay between busy polls, shared by program and erase.
	pollInterval = 3 * time.Millisecond
	// tRES1: time to leave power-down before the first command.
	wakeDelay = 5 * time.Microsecond

	statusBusy = 1 << 0
)

// JEDEC manufacturer/type/capacity bytes of the IS25LQ040B.
var jedecID = [3]byte{0x9D, 0x40, 0x13}

var deviceDescriptor = &ofl.DeviceDescriptor{
	Version:          ofl.DriverVersion,
	Name:             "is25lq040b",
	Type:             ofl.DeviceOnChip,
	BaseAddr:         0xA0000000,
	TotalSize:        FlashSize,
	PageSize:         PageSize,
	BlankValue:       BlankValue,
	ProgramTimeoutMs: 20,
	EraseTimeoutMs:   3000,
	Sectors: []ofl.SectorRange{
		{Size: SectorSize, Count: FlashSize / SectorSize},
	},
}

var capabilities = driver.Capabilities{
	NativeRead:     false,
	ChipErase:      true,
	UniformSectors: true,
	CustomVerify:   false,
}

type Option func(*Device)

// Overrides the busy-wait delay primitive. Tests pass a no-op.
func WithDelay(sleep func(time.Duration)) Option {
	return func(d *Device) {
		d.sleep = sleep
	}
}

func New(bus ofl.SpiBusInterface, opts ...Option) *Device {
	d := &Device{bus: bus, sleep: time.Sleep}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Command header for ops that carry a 24-bit address.
func encodeCommand(op Opcode, addr ofl.Address) []byte {
	return []byte{byte(op), byte(addr >> 16), byte(addr >> 8), byte(addr)}
}

// Runs one chip-select framed command, shifting out header plus readLen
// dummy bytes, and returns the bytes shifted in after the header.
func (d *Device) command(header []byte, readLen int) []byte {
	out := make([]byte, len(header)+readLen)
	copy(out, header)
	d.bus.Select()
	in := d.bus.Transfer(out)
	d.bus.Deselect()
	return in[len(header):]
}

// Runs one chip-select framed command that returns nothing.
func (d *Device) write(out []byte) {
	d.bus.Select()
	d.bus.Transfer(out)
	d.bus.Deselect()
}

// Sets the write-enable latch. Required before every program or erase
// command; the device clears it again when the operation completes.
func (d *Device) writeEnable() {
	d.write([]byte{byte(OpWriteEnable)})
}

func (d *Device) readStatus() byte {
	return d.command([]byte{byte(OpReadStatus)}, 1)[0]
}

func (d *Device) isBusy() bool {
	return d.readStatus()&statusBusy != 0
}

// Blocks until the device reports ready. No upper bound on iterations;
// a stuck device hangs here and the host's own timeout is the backstop.
func (d *Device) waitReady() {
	for d.isBusy() {
		d.polls++
		d.sleep(pollInterval)
	}
}

// Number of busy polls issued so far. Diagnostic only.
func (d *Device) PollCount() uint64 {
	return d.polls
}

func (d *Device) Init(clockHz uint32) error {
	glog.V(1).Infof("[is25lq040b-init]: host clock = %v Hz", clockHz)
	d.bus.Configure(busMode, busClockHz, ofl.FrameWidth8)
	d.bus.Deselect()

	// Wake the device in case it was left in deep power-down.
	d.write([]byte{byte(OpReleasePowerDown)})
	d.sleep(wakeDelay)

	id := d.command([]byte{byte(OpReadJedecID)}, 3)
	if !bytes.Equal(id, jedecID[:]) {
		return fmt.Errorf("unexpected JEDEC id %x, want %x", id, jedecID)
	}

	d.waitReady()
	return nil
}

func (d *Device) UnInit() error {
	glog.V(1).Infof("[is25lq040b-uninit]")
	return nil
}

func (d *Device) EraseSector(addr ofl.Address) error {
	addr &= AddrMask
	glog.V(1).Infof("[is25lq040b-erase-sector]: addr = %#08x", uint32(addr))
	d.writeEnable()
	d.write(encodeCommand(OpSectorErase, addr))
	d.waitReady()
	return nil
}

func (d *Device) EraseChip() error {
	glog.V(1).Infof("[is25lq040b-erase-chip]")
	d.writeEnable()
	d.write([]byte{byte(OpChipErase)})
	d.waitReady()
	return nil
}

func (d *Device) ProgramPage(addr ofl.Address, data []byte) error {
	addr &= AddrMask
	glog.V(1).Infof("[is25lq040b-program]: addr = %#08x, dlen = %v", uint32(addr), len(data))
	d.writeEnable()
	out := append(encodeCommand(OpPageProgram, addr), data...)
	d.write(out)
	d.waitReady()
	return nil
}

func (d *Device) Read(addr ofl.Address, data []byte) error {
	addr &= AddrMask
	glog.V(1).Infof("[is25lq040b-read]: addr = %#08x, dlen = %v", uint32(addr), len(data))
	copy(data, d.command(encodeCommand(OpReadData, addr), len(data)))
	return nil
}

const blankCheckChunk = 256

func (d *Device) IsBlank(addr ofl.Address, size uint32, blank byte) (bool, error) {
	addr &= AddrMask
	var buf [blankCheckChunk]byte
	for i := uint32(0); i < size; {
		s := size - i
		if s > blankCheckChunk {
			s = blankCheckChunk
		}
		if err := d.Read(addr+ofl.Address(i), buf[:s]); err != nil {
			return false, fmt.Errorf("read failed: %v", err)
		}
		for j := uint32(0); j < s; j++ {
			if buf[j] != blank {
				return false, nil
			}
		}
		i += s
	}
	return true, nil
}

func (d *Device) Descriptor() *ofl.DeviceDescriptor {
	return deviceDescriptor
}

func (d *Device) Capabilities() driver.Capabilities {
	return capabilities
}
