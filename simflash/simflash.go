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

// Behavioral model of an IS25LQ040B attached to the SPI bus. Decodes
// the chip-select framed command stream byte by byte, so drivers can be
// exercised end to end without hardware.
package simflash

import (
	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
)

const (
	flashSize  = 0x00080000
	pageSize   = 256
	sectorSize = 4096
	blankValue = 0xFF
)

const (
	opPageProgram      = 0x02
	opReadData         = 0x03
	opReadStatus       = 0x05
	opWriteEnable      = 0x06
	opSectorErase      = 0x20
	opReadJedecID      = 0x9F
	opReleasePowerDown = 0xAB
	opChipErase        = 0xC7
)

var jedecID = [3]byte{0x9D, 0x40, 0x13}

// Implements ofl.SpiBusInterface.
type Chip struct {
	mem      []byte
	selected bool
	// Write-enable latch. Program and erase commands without it are
	// ignored, like on the physical part.
	wel bool
	// Remaining status reads that report busy.
	busy int
	// Status reads reporting busy after each program/erase.
	busyPolls int
	// Bytes shifted in since the last Select.
	frame []byte

	mode    ofl.SpiMode
	clockHz uint32
	width   ofl.FrameWidth
}

type Option func(*Chip)

// Number of consecutive status reads that report busy after a program
// or erase command. Default 2.
func WithBusyPolls(n int) Option {
	return func(c *Chip) {
		c.busyPolls = n
	}
}

func New(opts ...Option) *Chip {
	c := &Chip{
		mem:       make([]byte, flashSize),
		busyPolls: 2,
	}
	for i := range c.mem {
		c.mem[i] = blankValue
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Chip) Configure(mode ofl.SpiMode, clockHz uint32, width ofl.FrameWidth) {
	c.mode = mode
	c.clockHz = clockHz
	c.width = width
}

func (c *Chip) Select() {
	c.selected = true
	c.frame = nil
}

func (c *Chip) Deselect() {
	if c.selected && len(c.frame) > 0 {
		c.execute()
	}
	c.selected = false
	c.frame = nil
}

func (c *Chip) Transfer(out []byte) []byte {
	in := make([]byte, len(out))
	if !c.selected {
		for i := range in {
			in[i] = 0xFF
		}
		return in
	}
	for i, b := range out {
		pos := len(c.frame)
		c.frame = append(c.frame, b)
		in[i] = c.respByte(pos)
	}
	return in
}

// Response byte shifted out while the byte at frame position pos is
// shifted in.
func (c *Chip) respByte(pos int) byte {
	if pos == 0 {
		return 0xFF
	}
	switch c.frame[0] {
	case opReadStatus:
		var status byte
		if c.busy > 0 {
			status |= 1 << 0
			c.busy--
		}
		if c.wel {
			status |= 1 << 1
		}
		return status
	case opReadData:
		if pos < 4 {
			return 0xFF
		}
		addr := c.frameAddr() + uint32(pos-4)
		return c.mem[addr%flashSize]
	case opReadJedecID:
		if pos <= len(jedecID) {
			return jedecID[pos-1]
		}
		return 0xFF
	}
	return 0xFF
}

// 24-bit address from the command header.
func (c *Chip) frameAddr() uint32 {
	return uint32(c.frame[1])<<16 | uint32(c.frame[2])<<8 | uint32(c.frame[3])
}

// Commands latch on chip-select release.
func (c *Chip) execute() {
	switch c.frame[0] {
	case opWriteEnable:
		c.wel = true
	case opPageProgram:
		if !c.wel || len(c.frame) < 5 {
			return
		}
		addr := c.frameAddr() % flashSize
		page := addr &^ (pageSize - 1)
		off := addr & (pageSize - 1)
		for i, b := range c.frame[4:] {
			// Programming only clears bits; the payload wraps
			// within the page.
			dst := page + (off+uint32(i))%pageSize
			c.mem[dst] &= b
		}
		c.wel = false
		c.busy = c.busyPolls
	case opSectorErase:
		if !c.wel {
			return
		}
		start := (c.frameAddr() % flashSize) &^ (sectorSize - 1)
		for i := uint32(0); i < sectorSize; i++ {
			c.mem[start+i] = blankValue
		}
		c.wel = false
		c.busy = c.busyPolls
	case opChipErase:
		if !c.wel {
			return
		}
		for i := range c.mem {
			c.mem[i] = blankValue
		}
		c.wel = false
		c.busy = c.busyPolls
	}
}

// Copy of the memory contents at [addr, addr+n). Test helper.
func (c *Chip) Bytes(addr, n uint32) []byte {
	out := make([]byte, n)
	copy(out, c.mem[addr:addr+n])
	return out
}

// Overwrites memory directly, bypassing the command decoder. Test
// helper.
func (c *Chip) SetBytes(addr uint32, data []byte) {
	copy(c.mem[addr:], data)
}
