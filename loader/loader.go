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

// Loader entry-point table. Adapts host calls into driver calls and
// collapses driver errors into the binary result codes of the ABI.
package loader

import (
	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/driver"

	"github.com/golang/glog"
)

type Loader struct {
	dev driver.DriverInterface
	// Optional external watchdog feeder. A deployment with an active
	// watchdog must supply one; the default does nothing.
	feed func()
}

type Option func(*Loader)

// Installs a watchdog feeder invoked from the FeedWatchdog slot and at
// the start of every bulk erase.
func WithWatchdog(feed func()) Option {
	return func(l *Loader) {
		l.feed = feed
	}
}

func New(dev driver.DriverInterface, opts ...Option) *Loader {
	l := &Loader{dev: dev}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Builds the entry-point table for the attached driver. Slots for
// capabilities the driver does not carry stay nil, telling the host to
// use its generic fallback. CalcCRC and OpenStart are reserved and
// always absent.
func (l *Loader) Table() *Table {
	caps := l.dev.Capabilities()
	t := &Table{
		FeedWatchdog: l.feedWatchdog,
		Init:         l.init,
		UnInit:       l.unInit,
		EraseSector:  l.eraseSector,
		ProgramPage:  l.programPage,
		OpenProgram:  l.openProgram,
	}
	if !caps.NativeRead {
		t.BlankCheck = l.blankCheck
		t.OpenRead = l.openRead
	}
	if caps.ChipErase {
		t.EraseChip = l.eraseChip
	}
	if caps.CustomVerify {
		t.Verify = l.verify
	}
	if caps.UniformSectors {
		t.OpenErase = l.openErase
	}
	return t
}

func (l *Loader) feedWatchdog() {
	if l.feed != nil {
		l.feed()
	}
}

func (l *Loader) init(addr ofl.Address, clockHz uint32, fn Function) Status {
	glog.V(1).Infof("[loader-init]: addr = %#08x, clock = %v, function = %v",
		uint32(addr), clockHz, fn)
	if err := l.dev.Init(clockHz); err != nil {
		glog.Warningf("Init failed: %v", err)
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) unInit(fn Function) Status {
	glog.V(1).Infof("[loader-uninit]: function = %v", fn)
	if err := l.dev.UnInit(); err != nil {
		glog.Warningf("UnInit failed: %v", err)
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) eraseSector(addr ofl.Address) Status {
	if err := l.dev.EraseSector(addr); err != nil {
		glog.Warningf("EraseSector failed: %v", err)
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) eraseChip() Status {
	if err := l.dev.EraseChip(); err != nil {
		glog.Warningf("EraseChip failed: %v", err)
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) programPage(addr ofl.Address, data []byte) Status {
	if err := l.dev.ProgramPage(addr, data); err != nil {
		glog.Warningf("ProgramPage failed: %v", err)
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) blankCheck(addr ofl.Address, size uint32, blank byte) Status {
	blankOk, err := l.dev.IsBlank(addr, size, blank)
	if err != nil {
		glog.Warningf("BlankCheck failed: %v", err)
		return StatusFailed
	}
	if !blankOk {
		return StatusFailed
	}
	return StatusOK
}

func (l *Loader) verify(addr ofl.Address, data []byte) ofl.Address {
	buf := make([]byte, len(data))
	if err := l.dev.Read(addr, buf); err != nil {
		glog.Warningf("Verify read failed: %v", err)
		return addr
	}
	for i := range data {
		if buf[i] != data[i] {
			return addr + ofl.Address(i)
		}
	}
	return addr + ofl.Address(len(data))
}

func (l *Loader) openRead(addr ofl.Address, data []byte) int {
	if err := l.dev.Read(addr, data); err != nil {
		glog.Warningf("OpenRead failed: %v", err)
		return -1
	}
	return len(data)
}

// Splits the host request into page-sized program calls. Stops at the
// first failing page; already programmed pages are left as they are.
func (l *Loader) openProgram(addr ofl.Address, data []byte) Status {
	pageSize := l.dev.Descriptor().PageSize
	pages := uint32(len(data)) / pageSize
	for i := uint32(0); i < pages; i++ {
		if r := l.programPage(addr, data[:pageSize]); r != StatusOK {
			return r
		}
		addr += ofl.Address(pageSize)
		data = data[pageSize:]
	}
	return StatusOK
}

// Erases count sectors at fixed sector-size strides from addr. Stops at
// the first failure. Only populated for uniform-sector devices.
func (l *Loader) openErase(addr ofl.Address, index, count uint32) Status {
	glog.V(1).Infof("[loader-open-erase]: addr = %#08x, index = %v, count = %v",
		uint32(addr), index, count)
	// Long erase runs must not trip an external watchdog.
	l.feedWatchdog()
	sectorSize := l.dev.Descriptor().Sectors[0].Size
	for i := uint32(0); i < count; i++ {
		if r := l.eraseSector(addr); r != StatusOK {
			return r
		}
		addr += ofl.Address(sectorSize)
	}
	return StatusOK
}
