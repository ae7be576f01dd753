// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

// gravity is standard gravity in m/s² per g.
const gravity = 9.80665

// scale10Bit is the step in mg/LSB for each range in 10 bit mode: the
// fixed 1024 count output window is spread over the selected range, so the
// step doubles with each range.
var scale10Bit = [4]float64{
	Range2g:  3.90625,
	Range4g:  7.8125,
	Range8g:  15.625,
	Range16g: 31.25,
}

// scaleFullRes is the step in mg/LSB in full resolution mode. The output
// bit depth grows with the range, keeping the step at 256 LSB/g no matter
// which range is selected.
const scaleFullRes = 3.90625

// scaleFor returns the step in mg/LSB for a data format.
func scaleFor(r Range, f Format) float64 {
	if f&FullResolution != 0 {
		return scaleFullRes
	}
	return scale10Bit[r&0x03]
}

// convert turns a raw twos complement count into m/s². Linear, passes
// through zero, valid for any int16 input.
func convert(raw int16, mgPerLSB float64) float64 {
	return float64(raw) * mgPerLSB / 1000 * gravity
}
