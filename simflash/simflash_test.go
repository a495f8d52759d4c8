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

package simflash

import (
	"bytes"
	"testing"
)

// Shifts one chip-select framed command through the decoder.
func transact(c *Chip, out []byte) []byte {
	c.Select()
	in := c.Transfer(out)
	c.Deselect()
	return in
}

func writeEnable(c *Chip) {
	transact(c, []byte{opWriteEnable})
}

func TestProgramRequiresWriteEnable(t *testing.T) {
	c := New()
	transact(c, []byte{opPageProgram, 0x00, 0x10, 0x00, 0x12, 0x34})
	if got := c.Bytes(0x1000, 2); !bytes.Equal(got, []byte{0xFF, 0xFF}) {
		t.Errorf("program without write enable changed memory: % x", got)
	}

	writeEnable(c)
	transact(c, []byte{opPageProgram, 0x00, 0x10, 0x00, 0x12, 0x34})
	if got := c.Bytes(0x1000, 2); !bytes.Equal(got, []byte{0x12, 0x34}) {
		t.Errorf("program wrote % x, want 12 34", got)
	}
}

// The write-enable latch clears after each program; a second program
// without a fresh enable is ignored.
func TestWriteEnableLatchClears(t *testing.T) {
	c := New()
	writeEnable(c)
	transact(c, []byte{opPageProgram, 0x00, 0x00, 0x00, 0xAA})
	transact(c, []byte{opPageProgram, 0x00, 0x00, 0x01, 0xBB})
	if got := c.Bytes(0, 2); !bytes.Equal(got, []byte{0xAA, 0xFF}) {
		t.Errorf("memory = % x, want AA FF", got)
	}
}

func TestProgramOnlyClearsBits(t *testing.T) {
	c := New()
	c.SetBytes(0x2000, []byte{0x0F})
	writeEnable(c)
	transact(c, []byte{opPageProgram, 0x00, 0x20, 0x00, 0xF3})
	if got := c.Bytes(0x2000, 1)[0]; got != 0x0F&0xF3 {
		t.Errorf("byte = %#02x, want %#02x", got, 0x0F&0xF3)
	}
}

// Payload longer than the distance to the page end wraps to the page
// start, like on the physical part.
func TestProgramWrapsWithinPage(t *testing.T) {
	c := New()
	writeEnable(c)
	transact(c, []byte{opPageProgram, 0x00, 0x00, 0xFE, 0x11, 0x22, 0x33})
	if got := c.Bytes(0xFE, 2); !bytes.Equal(got, []byte{0x11, 0x22}) {
		t.Errorf("page tail = % x, want 11 22", got)
	}
	if got := c.Bytes(0x00, 1)[0]; got != 0x33 {
		t.Errorf("wrapped byte = %#02x, want 0x33", got)
	}
	if got := c.Bytes(0x100, 1)[0]; got != 0xFF {
		t.Error("program spilled into the next page")
	}
}

func TestStatusBusyAndWel(t *testing.T) {
	c := New(WithBusyPolls(1))
	writeEnable(c)
	if status := transact(c, []byte{opReadStatus, 0x00})[1]; status != 0x02 {
		t.Errorf("status after write enable = %#02x, want 0x02", status)
	}

	transact(c, []byte{opSectorErase, 0x00, 0x00, 0x00})
	if status := transact(c, []byte{opReadStatus, 0x00})[1]; status&0x01 == 0 {
		t.Error("status not busy right after erase")
	}
	if status := transact(c, []byte{opReadStatus, 0x00})[1]; status != 0x00 {
		t.Errorf("status after busy window = %#02x, want 0x00", status)
	}
}

func TestReadJedecID(t *testing.T) {
	c := New()
	in := transact(c, []byte{opReadJedecID, 0x00, 0x00, 0x00})
	if !bytes.Equal(in[1:], jedecID[:]) {
		t.Errorf("jedec id = % x, want % x", in[1:], jedecID)
	}
}

func TestReadCrossesPages(t *testing.T) {
	c := New()
	c.SetBytes(0x10FE, []byte{0x01, 0x02, 0x03, 0x04})
	out := make([]byte, 4+4)
	out[0], out[1], out[2], out[3] = opReadData, 0x00, 0x10, 0xFE
	in := transact(c, out)
	if !bytes.Equal(in[4:], []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("read = % x, want 01 02 03 04", in[4:])
	}
}

func TestTransferWhileDeselected(t *testing.T) {
	c := New()
	in := c.Transfer([]byte{opReadStatus, 0x00})
	if !bytes.Equal(in, []byte{0xFF, 0xFF}) {
		t.Errorf("deselected bus returned % x, want FF FF", in)
	}
}
