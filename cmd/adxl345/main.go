// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl345 prints live acceleration readings, either as numbers or as
// colored per-axis bars on the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/adxl345"
)

func mainImpl() error {
	i2cName := flag.String("i2c", "", "I²C bus name, empty for the first available")
	spiName := flag.String("spi", "", "use SPI instead of I²C, port name")
	alt := flag.Bool("alt", false, "use the alternate I²C address 0x1D")
	rangeG := flag.Int("g", 2, "g-range: 2, 4, 8 or 16")
	fullRes := flag.Bool("fullres", true, "full resolution mode")
	interval := flag.Duration("interval", 100*time.Millisecond, "sampling interval")
	duration := flag.Duration("duration", 10*time.Second, "how long to sample")
	bars := flag.Bool("bars", false, "render colored bars instead of numbers")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	var rng adxl345.Range
	switch *rangeG {
	case 2:
		rng = adxl345.Range2g
	case 4:
		rng = adxl345.Range4g
	case 8:
		rng = adxl345.Range8g
	case 16:
		rng = adxl345.Range16g
	default:
		return fmt.Errorf("unsupported g-range %d", *rangeG)
	}

	if _, err := host.Init(); err != nil {
		return err
	}

	opts := adxl345.Opts{Range: rng, FullResolution: *fullRes, TurnOnOnStart: true}
	var d *adxl345.Dev
	if *spiName != "" {
		p, err := spireg.Open(*spiName)
		if err != nil {
			return err
		}
		defer p.Close()
		if d, err = adxl345.NewSPI(p, &opts); err != nil {
			return err
		}
	} else {
		b, err := i2creg.Open(*i2cName)
		if err != nil {
			return err
		}
		defer b.Close()
		addr := adxl345.I2CAddr
		if *alt {
			addr = adxl345.I2CAltAddr
		}
		if d, err = adxl345.NewI2C(b, addr, &opts); err != nil {
			return err
		}
	}
	defer d.Halt()

	if id, err := d.DeviceID(); err != nil {
		return err
	} else if id != adxl345.DeviceID {
		fmt.Fprintf(os.Stderr, "warning: device ID %#02x, expected %#02x; check the wiring\n", id, adxl345.DeviceID)
	}

	w := colorable.NewColorableStdout()
	fullScale := float64(*rangeG) * 9.80665
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	stop := time.After(*duration)
	for {
		select {
		case <-stop:
			if *bars {
				fmt.Fprint(w, "\n\033[0m")
			}
			return nil
		case <-ticker.C:
			a, err := d.ReadAcceleration()
			if err != nil {
				return err
			}
			if *bars {
				drawBars(w, a, fullScale)
			} else {
				fmt.Fprintln(w, a)
			}
		}
	}
}

// drawBars redraws the current line with one bar per axis, full scale at
// the configured range.
func drawBars(w io.Writer, a adxl345.Acceleration, fullScale float64) {
	axes := []struct {
		name string
		v    float64
		c    color.NRGBA
	}{
		{"X", a.X, color.NRGBA{R: 255, A: 255}},
		{"Y", a.Y, color.NRGBA{G: 255, A: 255}},
		{"Z", a.Z, color.NRGBA{B: 255, A: 255}},
	}
	const width = 16
	var b strings.Builder
	b.WriteString("\r\033[0m")
	for _, ax := range axes {
		n := int(math.Abs(ax.v) / fullScale * width)
		if n > width {
			n = width
		}
		fmt.Fprintf(&b, "%s%+7.2f ", ax.name, ax.v)
		blk := ansi256.Default.Block(ax.c)
		for i := 0; i < n; i++ {
			b.WriteString(blk)
		}
		b.WriteString(strings.Repeat(" ", width-n))
		b.WriteString("\033[0m ")
	}
	_, _ = io.WriteString(w, b.String())
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "adxl345: %s.\n", err)
		os.Exit(1)
	}
}
