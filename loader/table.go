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

package loader

import (
	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
)

// Result code of every entry point: 0 is success, anything else is
// failure. The host never sees more detail than this.
type Status int

const (
	StatusOK     Status = 0
	StatusFailed Status = 1
)

// Function code the host passes to Init and UnInit.
//
//go:generate stringer -type Function
type Function uint32

const (
	FunctionErase   Function = 1
	FunctionProgram Function = 2
	FunctionVerify  Function = 3
)

// ABI position of each entry point in the table.
//
//go:generate stringer -type Slot
type Slot int

const (
	SlotFeedWatchdog Slot = iota
	SlotInit
	SlotUnInit
	SlotEraseSector
	SlotProgramPage
	SlotBlankCheck
	SlotEraseChip
	SlotVerify
	SlotCalcCRC
	SlotOpenRead
	SlotOpenProgram
	SlotOpenErase
	SlotOpenStart
	NumSlots
)

// The fixed entry-point surface the host drives, one optional function
// reference per ABI slot. A nil entry means the capability is absent
// and the host uses its own generic fallback. Built once at load time
// and never mutated.
type Table struct {
	// Keeps an external watchdog alive during long erase or program
	// runs.
	FeedWatchdog func()
	Init         func(addr ofl.Address, clockHz uint32, fn Function) Status
	UnInit       func(fn Function) Status
	EraseSector  func(addr ofl.Address) Status
	ProgramPage  func(addr ofl.Address, data []byte) Status
	// Returns StatusOK only if every byte in range reads as blank.
	BlankCheck func(addr ofl.Address, size uint32, blank byte) Status
	EraseChip  func() Status
	// Returns addr+len(data) on match, the address of the first
	// mismatch otherwise.
	Verify func(addr ofl.Address, data []byte) ofl.Address
	// Reserved, always absent.
	CalcCRC func(addr ofl.Address, size uint32) uint32
	// Returns the number of bytes read, or -1 on failure.
	OpenRead    func(addr ofl.Address, data []byte) int
	OpenProgram func(addr ofl.Address, data []byte) Status
	OpenErase   func(addr ofl.Address, index, count uint32) Status
	// Reserved for turbo mode, always absent.
	OpenStart func() Status
}

// Reports whether the given ABI slot is populated.
func (t *Table) Present(s Slot) bool {
	switch s {
	case SlotFeedWatchdog:
		return t.FeedWatchdog != nil
	case SlotInit:
		return t.Init != nil
	case SlotUnInit:
		return t.UnInit != nil
	case SlotEraseSector:
		return t.EraseSector != nil
	case SlotProgramPage:
		return t.ProgramPage != nil
	case SlotBlankCheck:
		return t.BlankCheck != nil
	case SlotEraseChip:
		return t.EraseChip != nil
	case SlotVerify:
		return t.Verify != nil
	case SlotCalcCRC:
		return t.CalcCRC != nil
	case SlotOpenRead:
		return t.OpenRead != nil
	case SlotOpenProgram:
		return t.OpenProgram != nil
	case SlotOpenErase:
		return t.OpenErase != nil
	case SlotOpenStart:
		return t.OpenStart != nil
	}
	return false
}

// Slot population in ABI order.
func (t *Table) Presence() [NumSlots]bool {
	var p [NumSlots]bool
	for s := Slot(0); s < NumSlots; s++ {
		p[s] = t.Present(s)
	}
	return p
}
