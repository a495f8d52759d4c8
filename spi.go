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

// Synchronous serial bus interface.
package ofl

// Offset into the flash address space. The host may present addresses in
// its mapped address space; drivers normalize them before issuing bus
// commands.
type Address uint32

//go:generate stringer -type SpiMode
type SpiMode int

const (
	SpiMode0 SpiMode = iota
	SpiMode1
	SpiMode2
	SpiMode3
)

type FrameWidth uint8

const (
	FrameWidth8  FrameWidth = 8
	FrameWidth16 FrameWidth = 16
)

//go:generate mockgen -destination=mocks/spi.go -package=mocks github.com/itzandroidtab/ofl-lpc1756-is25lq040b SpiBusInterface
type SpiBusInterface interface {
	// Applies clock mode, clock rate and frame width to the bus.
	Configure(mode SpiMode, clockHz uint32, width FrameWidth)
	// Chip-select framing. Every command must pair Select with Deselect,
	// on error paths included.
	Select()
	Deselect()
	// Full-duplex byte exchange. Shifts out all of out and returns the
	// same number of bytes shifted in. Bus faults are not modeled here;
	// a broken bus surfaces as garbage data and is caught by the status
	// polling or the host's verify pass.
	Transfer(out []byte) []byte
}
