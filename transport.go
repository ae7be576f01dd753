// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// transport is the register bus the command API runs on. Both variants
// frame a register access as required by the physical bus; neither one
// retries, and bus errors pass through unmodified.
//
// A multi byte access is always a single bus transaction. The device auto
// increments its internal register pointer during a burst, which is the
// only way to get an atomic 16 bit pair or a coherent 6 byte sample.
type transport interface {
	read(reg Register, buf []byte) error
	write(reg Register, data []byte) error
	fmt.Stringer
}

// i2cTransport frames a register read as a one byte address write followed
// by the data read in the same transaction (repeated start).
type i2cTransport struct {
	d *i2c.Dev
}

func (t *i2cTransport) read(reg Register, buf []byte) error {
	return t.d.Tx([]byte{byte(reg)}, buf)
}

func (t *i2cTransport) write(reg Register, data []byte) error {
	w := make([]byte, 1+len(data))
	w[0] = byte(reg)
	copy(w[1:], data)
	return t.d.Tx(w, nil)
}

func (t *i2cTransport) String() string {
	return t.d.String()
}

const (
	spiRead      = 0x80 // high bit of the address byte selects read
	spiMultiByte = 0x40 // next bit enables the auto increment burst
)

// spiTransport frames a register access with the read and multi byte bits
// ORed into the address byte, then clocks the payload after one dummy
// byte. The device speaks SPI mode 3, MSB first.
type spiTransport struct {
	c spi.Conn
}

func (t *spiTransport) read(reg Register, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = byte(reg) | spiRead
	if len(buf) > 1 {
		w[0] |= spiMultiByte
	}
	r := make([]byte, len(w))
	if err := t.c.Tx(w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	return nil
}

func (t *spiTransport) write(reg Register, data []byte) error {
	w := make([]byte, 1+len(data))
	w[0] = byte(reg)
	if len(data) > 1 {
		w[0] |= spiMultiByte
	}
	copy(w[1:], data)
	return t.c.Tx(w, nil)
}

func (t *spiTransport) String() string {
	return t.c.String()
}
