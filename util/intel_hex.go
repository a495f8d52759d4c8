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

package util

import (
	"fmt"
	"os"
	"sort"

	"github.com/marcinbor85/gohex"
)

// A contiguous run of firmware bytes at a flash address.
type Segment struct {
	Address uint32
	Data    []byte
}

// Loads firmware segments from an Intel-Hex file, lowest address first.
func LoadIntelHexFile(filename string) ([]Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err = mem.ParseIntelHex(file); err != nil {
		return nil, err
	}

	var segments []Segment
	for _, s := range mem.GetDataSegments() {
		segments = append(segments, Segment{s.Address, s.Data})
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no data segments in %v", filename)
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Address < segments[j].Address
	})
	return segments, nil
}

// Flattens segments into one contiguous image, filling gaps with the
// blank value so the filler bytes do not disturb erased flash.
func MergeSegments(segments []Segment, blank byte) (*Segment, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments to merge")
	}
	base := segments[0].Address
	last := segments[len(segments)-1]
	size := last.Address + uint32(len(last.Data)) - base

	data := make([]byte, size)
	for i := range data {
		data[i] = blank
	}
	end := base
	for _, s := range segments {
		if s.Address < end {
			return nil, fmt.Errorf("segment at 0x%08X overlaps previous segment", s.Address)
		}
		copy(data[s.Address-base:], s.Data)
		end = s.Address + uint32(len(s.Data))
	}
	return &Segment{base, data}, nil
}
