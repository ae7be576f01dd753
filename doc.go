// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl345 controls an ADXL345/ADXL346 3-axis accelerometer over
// I²C or SPI.
//
// The device exposes its whole state through a fixed register map; the
// driver keeps no copy of it and re-reads the data format register
// whenever a conversion needs the current scale.
//
// # Datasheet
//
// http://www.analog.com/media/en/technical-documentation/data-sheets/ADXL345.pdf
package adxl345
