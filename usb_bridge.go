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

// USB debug-probe bridge that forwards SPI transactions to the target
// board. Control transfers carry bus configuration and chip-select
// changes, bulk endpoints carry transfer payloads.
package ofl

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	probeVid   = 0x1209
	probePid   = 0x6f1a
	probeInEp  = 1
	probeOutEp = 2

	probeMjVersion = 1
	probeMnVersion = 2
)

//go:generate stringer -type Request
type Request uint8

const (
	ReqSpiConfig       Request = 0x20
	ReqSpiChipSelect   Request = 0x21
	ReqSpiTransferCtrl Request = 0x22
	ReqSpiTransferBulk Request = 0x23
	ReqFwVersion       Request = 0x24
)

// Transfers at or above this size go over the bulk endpoints.
const bulkThreshold = 48

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlVendor | gousb.ControlInterface
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlVendor | gousb.ControlInterface
)

// Encapsulates probe USB resources. Implements SpiBusInterface.
type UsbBridge struct {
	ctx *gousb.Context
	// dev also implements the control endpoint.
	dev      *gousb.Device
	intf     *gousb.Interface
	intfDone func()
	// Bulk output/input data endpoints.
	epOut *gousb.OutEndpoint
	epIn  *gousb.InEndpoint
}

func OpenUsbBridge() (*UsbBridge, error) {
	b := &UsbBridge{}
	b.ctx = gousb.NewContext()

	var err error
	b.dev, err = b.ctx.OpenDeviceWithVIDPID(probeVid, probePid)
	if b.dev == nil && err == nil {
		b.Close()
		return nil, fmt.Errorf("probe device not found")
	}
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("opening probe device: %v", err)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	b.intf, b.intfDone, err = b.dev.DefaultInterface()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("claiming default interface: %v", err)
	}

	b.epOut, err = b.intf.OutEndpoint(probeOutEp)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("opening output endpoint: %v", err)
	}

	b.epIn, err = b.intf.InEndpoint(probeInEp)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("opening input endpoint: %v", err)
	}

	var ver fwVersion
	if err = b.readFwVersion(&ver); err != nil {
		b.Close()
		return nil, fmt.Errorf("failed reading FW version: %v", err)
	}
	if ver.Major != probeMjVersion || ver.Minor != probeMnVersion {
		b.Close()
		return nil, fmt.Errorf("unexpected FW version: %v", ver)
	}
	return b, nil
}

func (b *UsbBridge) Close() error {
	glog.V(1).Infof("Closing USB bridge")
	if b.intfDone != nil {
		b.intfDone()
		b.intfDone = nil
	}
	if b.intf != nil {
		b.intf.Close()
		b.intf = nil
	}
	if b.dev != nil {
		b.dev.Close()
		b.dev = nil
	}
	if b.ctx != nil {
		b.ctx.Close()
		b.ctx = nil
	}
	return nil
}

func (b *UsbBridge) controlOut(request Request, val uint16, data []byte) error {
	n, err := b.dev.Control(rTypeControlOut, uint8(request), val, 0, data)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(data) {
		return fmt.Errorf("failed to write entire buffer %v vs %v", n, len(data))
	}
	glog.V(2).Infof("[probe-ctrl OUT]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(data))
	return nil
}

func (b *UsbBridge) controlIn(request Request, val uint16, data []byte) error {
	n, err := b.dev.Control(rTypeControlIn, uint8(request), val, 0, data)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(data) {
		return fmt.Errorf("failed to read entire buffer %v vs %v", n, len(data))
	}
	glog.V(2).Infof("[probe-ctrl IN]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(data))
	return nil
}

func (b *UsbBridge) readFwVersion(ver *fwVersion) error {
	buf := make([]byte, 3)
	if err := b.controlIn(ReqFwVersion, 0, buf); err != nil {
		return err
	}
	ver.Major = buf[0]
	ver.Minor = buf[1]
	ver.Debug = buf[2]
	return nil
}

func (b *UsbBridge) Configure(mode SpiMode, clockHz uint32, width FrameWidth) {
	glog.V(1).Infof("[probe-spi-config]: mode = %v, clock = %vHz, width = %v bits",
		mode, clockHz, width)
	cfg := make([]byte, 6)
	cfg[0] = byte(mode)
	binary.LittleEndian.PutUint32(cfg[1:5], clockHz)
	cfg[5] = byte(width)
	if err := b.controlOut(ReqSpiConfig, 0, cfg); err != nil {
		glog.Warningf("SPI configure failed: %v", err)
	}
}

func (b *UsbBridge) Select() {
	if err := b.controlOut(ReqSpiChipSelect, 1, []byte{}); err != nil {
		glog.Warningf("Chip select failed: %v", err)
	}
}

func (b *UsbBridge) Deselect() {
	if err := b.controlOut(ReqSpiChipSelect, 0, []byte{}); err != nil {
		glog.Warningf("Chip deselect failed: %v", err)
	}
}

// Full-duplex exchange through the probe. Faults are logged and surface
// to the caller as zero filled data; the driver's polling or the host's
// verify pass catches them.
func (b *UsbBridge) Transfer(out []byte) []byte {
	in := make([]byte, len(out))
	var err error
	if len(out) < bulkThreshold {
		if err = b.controlOut(ReqSpiTransferCtrl, 0, out); err == nil {
			err = b.controlIn(ReqSpiTransferCtrl, 0, in)
		}
	} else {
		err = b.bulkTransfer(out, in)
	}
	if err != nil {
		glog.Warningf("SPI transfer of %v bytes failed: %v", len(out), err)
	}
	return in
}

func (b *UsbBridge) bulkTransfer(out, in []byte) error {
	dlen := make([]byte, 4)
	binary.LittleEndian.PutUint32(dlen, uint32(len(out)))
	if err := b.controlOut(ReqSpiTransferBulk, 0, dlen); err != nil {
		return fmt.Errorf("ReqSpiTransferBulk header failed: %v", err)
	}
	n, err := b.epOut.Write(out)
	if err != nil {
		return fmt.Errorf("bulk write failed: %v", err)
	}
	if n != len(out) {
		return fmt.Errorf("failed to write entire buffer over bulk interface")
	}
	if n, err = b.epIn.Read(in); err != nil {
		return fmt.Errorf("bulk read failed: %v", err)
	}
	if n != len(in) {
		return fmt.Errorf("failed to read entire buffer over bulk interface")
	}
	return nil
}

type fwVersion struct {
	Major uint8
	Minor uint8
	Debug uint8
}
