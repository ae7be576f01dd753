// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/adxl345"
)

// ExampleNewI2C reads converted acceleration over I²C for three seconds.
// The device ID check is advisory: the driver reports the byte as-is and
// the caller decides what a mismatch means.
func ExampleNewI2C() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := adxl345.NewI2C(b, adxl345.I2CAddr, &adxl345.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}

	if id, err := d.DeviceID(); err != nil {
		log.Fatal(err)
	} else if id != adxl345.DeviceID {
		log.Fatalf("unexpected device ID %#02x, check the wiring", id)
	}

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(3 * time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a, err := d.ReadAcceleration()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(a)
		}
	}
}

// ExampleNewSPI reads raw counts over SPI for three seconds.
func ExampleNewSPI() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg to find the first available SPI port.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := adxl345.NewSPI(p, &adxl345.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(3 * time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			raw, err := d.ReadRaw()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(raw)
		}
	}
}
