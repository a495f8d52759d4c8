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

package is25lq040b_test

import (
	"bytes"
	"testing"
	"time"

	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/driver/is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/mocks"

	"github.com/golang/mock/gomock"
)

func noDelay(time.Duration) {}

// Expects one chip-select framed command and returns in.
func expectCommand(bus *mocks.MockSpiBusInterface, out, in []byte) []*gomock.Call {
	return []*gomock.Call{
		bus.EXPECT().Select(),
		bus.EXPECT().Transfer(out).Return(in),
		bus.EXPECT().Deselect(),
	}
}

func expectWriteEnable(bus *mocks.MockSpiBusInterface) []*gomock.Call {
	return expectCommand(bus, []byte{0x06}, []byte{0xFF})
}

// Status poll returning the given busy flag.
func expectStatus(bus *mocks.MockSpiBusInterface, busy bool) []*gomock.Call {
	status := byte(0x00)
	if busy {
		status = 0x01
	}
	return expectCommand(bus, []byte{0x05, 0x00}, []byte{0xFF, status})
}

func inOrder(calls ...[]*gomock.Call) {
	var flat []*gomock.Call
	for _, c := range calls {
		flat = append(flat, c...)
	}
	gomock.InOrder(flat...)
}

func TestEraseSectorCommandSequence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	inOrder(
		expectWriteEnable(bus),
		expectCommand(bus, []byte{0x20, 0x00, 0x10, 0x00}, make([]byte, 4)),
		expectStatus(bus, true),
		expectStatus(bus, true),
		expectStatus(bus, false),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	if err := dev.EraseSector(0x1000); err != nil {
		t.Errorf("EraseSector failed: %v", err)
	}
	if dev.PollCount() != 2 {
		t.Errorf("Unexpected poll count %v, want 2", dev.PollCount())
	}
}

func TestEraseChipCommandSequence(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	inOrder(
		expectWriteEnable(bus),
		expectCommand(bus, []byte{0xC7}, []byte{0xFF}),
		expectStatus(bus, false),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	if err := dev.EraseChip(); err != nil {
		t.Errorf("EraseChip failed: %v", err)
	}
}

func TestProgramPageCommandFraming(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	inOrder(
		expectWriteEnable(bus),
		expectCommand(bus,
			append([]byte{0x02, 0x01, 0x23, 0x00}, data...),
			make([]byte, 8)),
		expectStatus(bus, false),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	if err := dev.ProgramPage(0x012300, data); err != nil {
		t.Errorf("ProgramPage failed: %v", err)
	}
}

func TestReadReturnsShiftedData(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	payload := []byte{0x11, 0x22, 0x33}
	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	inOrder(
		expectCommand(bus,
			[]byte{0x03, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00},
			append([]byte{0xFF, 0xFF, 0xFF, 0xFF}, payload...)),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	out := make([]byte, 3)
	if err := dev.Read(0x1000, out); err != nil {
		t.Errorf("Read failed: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Errorf("Unexpected data returned (%x)", out)
	}
}

// Host-mapped aliases of the same native offset must produce identical
// bus commands for every address-taking operation.
func TestAddressMasking(t *testing.T) {
	aliases := []ofl.Address{0x1000, 0xA0001000, 0xF0001000}

	for _, alias := range aliases {
		mockCtrl := gomock.NewController(t)

		bus := mocks.NewMockSpiBusInterface(mockCtrl)
		inOrder(
			// EraseSector
			expectWriteEnable(bus),
			expectCommand(bus, []byte{0x20, 0x00, 0x10, 0x00}, make([]byte, 4)),
			expectStatus(bus, false),
			// ProgramPage
			expectWriteEnable(bus),
			expectCommand(bus, []byte{0x02, 0x00, 0x10, 0x00, 0xAA}, make([]byte, 5)),
			expectStatus(bus, false),
			// Read
			expectCommand(bus, []byte{0x03, 0x00, 0x10, 0x00, 0x00}, make([]byte, 5)),
			// IsBlank reads through the same read command.
			expectCommand(bus, []byte{0x03, 0x00, 0x10, 0x00, 0x00}, []byte{0, 0, 0, 0, 0xFF}),
		)

		dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
		if err := dev.EraseSector(alias); err != nil {
			t.Errorf("EraseSector(%#x) failed: %v", uint32(alias), err)
		}
		if err := dev.ProgramPage(alias, []byte{0xAA}); err != nil {
			t.Errorf("ProgramPage(%#x) failed: %v", uint32(alias), err)
		}
		if err := dev.Read(alias, make([]byte, 1)); err != nil {
			t.Errorf("Read(%#x) failed: %v", uint32(alias), err)
		}
		if blank, err := dev.IsBlank(alias, 1, 0xFF); err != nil || !blank {
			t.Errorf("IsBlank(%#x) = %v, %v, want true", uint32(alias), blank, err)
		}

		mockCtrl.Finish()
	}
}

// A mismatch in the first chunk must stop the blank check without
// reading the rest of the range.
func TestIsBlankShortCircuits(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// 600 bytes would need three chunked reads; the first one already
	// contains a mismatch.
	chunk := make([]byte, 256)
	for i := range chunk {
		chunk[i] = 0xFF
	}
	chunk[10] = 0x00

	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	inOrder(
		expectCommand(bus,
			append([]byte{0x03, 0x00, 0x00, 0x00}, make([]byte, 256)...),
			append(make([]byte, 4), chunk...)),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	blank, err := dev.IsBlank(0, 600, 0xFF)
	if err != nil {
		t.Errorf("IsBlank failed: %v", err)
	}
	if blank {
		t.Errorf("IsBlank = true, want false")
	}
}

func TestInitConfiguresBusAndChecksId(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	first := []*gomock.Call{
		bus.EXPECT().Configure(ofl.SpiMode3, uint32(1_000_000), ofl.FrameWidth8),
		bus.EXPECT().Deselect(),
	}
	inOrder(
		first,
		expectCommand(bus, []byte{0xAB}, []byte{0xFF}),
		expectCommand(bus, []byte{0x9F, 0x00, 0x00, 0x00},
			[]byte{0xFF, 0x9D, 0x40, 0x13}),
		expectStatus(bus, false),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	if err := dev.Init(96_000_000); err != nil {
		t.Errorf("Init failed: %v", err)
	}
}

func TestInitRejectsUnknownChip(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	bus := mocks.NewMockSpiBusInterface(mockCtrl)
	first := []*gomock.Call{
		bus.EXPECT().Configure(ofl.SpiMode3, uint32(1_000_000), ofl.FrameWidth8),
		bus.EXPECT().Deselect(),
	}
	inOrder(
		first,
		expectCommand(bus, []byte{0xAB}, []byte{0xFF}),
		expectCommand(bus, []byte{0x9F, 0x00, 0x00, 0x00},
			[]byte{0xFF, 0xEF, 0x40, 0x13}),
	)

	dev := is25lq040b.New(bus, is25lq040b.WithDelay(noDelay))
	if err := dev.Init(96_000_000); err == nil {
		t.Errorf("Init expected to fail on wrong JEDEC id")
	}
}

func TestDescriptorIsValid(t *testing.T) {
	dev := is25lq040b.New(nil)
	desc := dev.Descriptor()
	if err := desc.Validate(); err != nil {
		t.Errorf("Descriptor validation failed: %v", err)
	}
	if !desc.Uniform() {
		t.Errorf("Expected uniform sector layout")
	}
	if desc.SectorCount() != 128 {
		t.Errorf("Unexpected sector count %v, want 128", desc.SectorCount())
	}
}
