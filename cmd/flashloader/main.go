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

// Erases and programs the external serial flash through the USB debug
// probe bridge.
package main

import (
	"flag"
	"path"

	ofl "github.com/itzandroidtab/ofl-lpc1756-is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/driver/is25lq040b"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/loader"
	"github.com/itzandroidtab/ofl-lpc1756-is25lq040b/util"

	"github.com/golang/glog"
)

var (
	firmwareFile = flag.String("firmware", "", ".hex firmware file name")
	eraseAll     = flag.Bool("erase_all", false, "erase the whole device instead of programming")
	hostClock    = flag.Uint("clock", 96_000_000, "host core clock rate in Hz")
)

func init() {
	flag.Parse()
}

func program(host *util.Host, desc *ofl.DeviceDescriptor) error {
	segments, err := util.LoadIntelHexFile(*firmwareFile)
	if err != nil {
		return err
	}
	firmware, err := util.MergeSegments(segments, desc.BlankValue)
	if err != nil {
		return err
	}

	if err = host.Init(uint32(*hostClock), loader.FunctionProgram); err != nil {
		return err
	}
	defer host.UnInit(loader.FunctionProgram)
	return host.Program(firmware)
}

func erase(host *util.Host) error {
	if err := host.Init(uint32(*hostClock), loader.FunctionErase); err != nil {
		return err
	}
	defer host.UnInit(loader.FunctionErase)
	return host.EraseAll()
}

func main() {
	var err error
	defer glog.Flush()

	if !*eraseAll {
		if len(*firmwareFile) == 0 {
			glog.Fatal("Missing --firmware argument")
		}
		if path.Ext(*firmwareFile) != ".hex" {
			glog.Fatal("Expected Intel-Hex firmware file")
		}
	}

	bridge, err := ofl.OpenUsbBridge()
	if err != nil {
		glog.Fatalf("Failed opening probe bridge: %v", err)
	}
	defer bridge.Close()

	dev := is25lq040b.New(bridge)
	ldr := loader.New(dev)
	host, err := util.NewHost(ldr.Table(), dev.Descriptor())
	if err != nil {
		glog.Fatalf("Failed building host: %v", err)
	}

	if *eraseAll {
		if err = erase(host); err != nil {
			glog.Fatalf("Failed erasing device: %v", err)
		}
		glog.Info("Successfully erased device")
		return
	}

	if err = program(host, dev.Descriptor()); err != nil {
		glog.Fatalf("Failed programming device: %v", err)
	}
	glog.Info("Successfully programmed device")
}
