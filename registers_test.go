// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import "testing"

var allRegisters = []Register{
	RegDevID,
	RegThreshTap,
	RegOfsX,
	RegOfsY,
	RegOfsZ,
	RegDur,
	RegLatent,
	RegWindow,
	RegThreshAct,
	RegThreshInact,
	RegTimeInact,
	RegActInactCtl,
	RegThreshFF,
	RegTimeFF,
	RegTapAxes,
	RegActTapStatus,
	RegBWRate,
	RegPowerCtl,
	RegIntEnable,
	RegIntMap,
	RegIntSource,
	RegDataFormat,
	RegDataX0,
	RegDataX1,
	RegDataY0,
	RegDataY1,
	RegDataZ0,
	RegDataZ1,
	RegFIFOCtl,
	RegFIFOStatus,
}

func TestRegisterMapComplete(t *testing.T) {
	for _, r := range allRegisters {
		if _, ok := regMap[r]; !ok {
			t.Errorf("register %#02x has no map entry", byte(r))
		}
	}
	if len(regMap) != len(allRegisters) {
		t.Errorf("register map has %d entries, want %d", len(regMap), len(allRegisters))
	}
}

func TestRegisterMapReserved(t *testing.T) {
	for a := Register(0x01); a <= 0x1C; a++ {
		if _, ok := regMap[a]; ok {
			t.Errorf("reserved address %#02x must not be mapped", byte(a))
		}
	}
	for r := range regMap {
		if r > RegFIFOStatus {
			t.Errorf("address %#02x is beyond the register file", byte(r))
		}
	}
}

// The six data registers must be contiguous and read-only, with each pair
// marked at its low byte, or the 6 byte burst in ReadRaw is meaningless.
func TestRegisterMapDataBlock(t *testing.T) {
	for i := 0; i < 6; i++ {
		r := RegDataX0 + Register(i)
		info, ok := regMap[r]
		if !ok {
			t.Fatalf("data register %#02x missing", byte(r))
		}
		if info.access != readOnly {
			t.Errorf("data register %#02x must be read-only", byte(r))
		}
		want := uint8(1)
		if i%2 == 0 {
			want = 2
		}
		if info.width != want {
			t.Errorf("data register %#02x width = %d, want %d", byte(r), info.width, want)
		}
	}
}

func TestRegisterMapAccess(t *testing.T) {
	ro := []Register{RegDevID, RegActTapStatus, RegIntSource, RegFIFOStatus}
	for _, r := range ro {
		if regMap[r].access != readOnly {
			t.Errorf("register %#02x must be read-only", byte(r))
		}
	}
	rw := []Register{
		RegThreshTap, RegOfsX, RegOfsY, RegOfsZ, RegDur, RegLatent,
		RegWindow, RegThreshAct, RegThreshInact, RegTimeInact,
		RegActInactCtl, RegThreshFF, RegTimeFF, RegTapAxes, RegBWRate,
		RegPowerCtl, RegIntEnable, RegIntMap, RegDataFormat, RegFIFOCtl,
	}
	for _, r := range rw {
		if regMap[r].access != readWrite {
			t.Errorf("register %#02x must be read-write", byte(r))
		}
	}
}
