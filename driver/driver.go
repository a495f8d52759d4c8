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

// Flash device driver contract consumed by the loader entry-point table.
package driver

import (
	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
)

// Optional capabilities of a chip driver. Chosen at build time per chip;
// an absent capability leaves the matching table slot empty and makes
// the host fall back to its own generic implementation.
type Capabilities struct {
	// Device contents are reachable through memory mapped io; the
	// explicit read and blank-check paths are not needed.
	NativeRead bool
	// Device has a dedicated whole-chip erase command.
	ChipErase bool
	// All sectors share one size, allowing multi-sector erase in one
	// call.
	UniformSectors bool
	// Driver supplies its own verify instead of the host's generic
	// read-and-compare.
	CustomVerify bool
}

//go:generate mockgen -destination=mocks/driver.go -package=mocks github.com/itzandroidtab/ofl-lpc1756-is25lq040b/driver DriverInterface
type DriverInterface interface {
	// Brings the bus and the device into a ready state. clockHz is the
	// host's core clock rate; the driver picks its own bus rate. Safe
	// to assume a fully cold start on every call.
	Init(clockHz uint32) error
	// Releases the device. The reverse of Init.
	UnInit() error
	// Erases the sector at the given address. The address must be
	// sector aligned; misaligned addresses are a caller bug.
	EraseSector(addr ofl.Address) error
	// Erases the whole device in one command.
	EraseChip() error
	// Programs up to one page. Callers split larger requests.
	ProgramPage(addr ofl.Address, data []byte) error
	// Plain pass-through memory read into data.
	Read(addr ofl.Address, data []byte) error
	// Reports whether every byte in [addr, addr+size) reads as blank.
	IsBlank(addr ofl.Address, size uint32, blank byte) (bool, error)
	// Static descriptor of the attached device.
	Descriptor() *ofl.DeviceDescriptor
	Capabilities() Capabilities
}
