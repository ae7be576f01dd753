// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl345plot records a burst of acceleration samples and renders them as
// a PNG line chart, one series per axis.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
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
	count := flag.Int("n", 256, "number of samples to record")
	interval := flag.Duration("interval", 10*time.Millisecond, "sampling interval")
	out := flag.String("o", "adxl345.png", "output PNG file")
	width := flag.Int("w", 800, "chart width in pixels")
	height := flag.Int("h", 400, "chart height in pixels")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *count < 2 {
		return errors.New("need at least 2 samples")
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

	opts := adxl345.Opts{Range: rng, FullResolution: true, TurnOnOnStart: true}
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

	samples := make([]adxl345.Acceleration, 0, *count)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for range ticker.C {
		a, err := d.ReadAcceleration()
		if err != nil {
			return err
		}
		samples = append(samples, a)
		if len(samples) == *count {
			break
		}
	}

	dc, err := renderChart(samples, *width, *height, float64(*rangeG)*9.80665)
	if err != nil {
		return err
	}
	return dc.SavePNG(*out)
}

// renderChart draws the three series over a zero line, scaled so the
// configured full range fills the chart height.
func renderChart(samples []adxl345.Acceleration, w, h int, fullScale float64) (*gg.Context, error) {
	const margin = 24.0
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	midY := float64(h) / 2
	plotW := float64(w) - 2*margin
	plotH := midY - margin

	// Zero line and full scale bounds.
	dc.SetRGB(0.8, 0.8, 0.8)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, midY, float64(w)-margin, midY)
	dc.DrawLine(margin, margin, float64(w)-margin, margin)
	dc.DrawLine(margin, float64(h)-margin, float64(w)-margin, float64(h)-margin)
	dc.Stroke()
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.DrawString("0", 4, midY+4)
	dc.DrawString(fmt.Sprintf("+%.1f m/s²", fullScale), 4, margin-4)
	dc.DrawString(fmt.Sprintf("-%.1f m/s²", fullScale), 4, float64(h)-margin+14)

	series := []struct {
		name    string
		r, g, b float64
		value   func(a adxl345.Acceleration) float64
	}{
		{"X", 0.8, 0.1, 0.1, func(a adxl345.Acceleration) float64 { return a.X }},
		{"Y", 0.1, 0.6, 0.1, func(a adxl345.Acceleration) float64 { return a.Y }},
		{"Z", 0.1, 0.1, 0.8, func(a adxl345.Acceleration) float64 { return a.Z }},
	}
	dc.SetLineWidth(1.5)
	for i, s := range series {
		dc.SetRGB(s.r, s.g, s.b)
		for j, a := range samples {
			x := margin + float64(j)/float64(len(samples)-1)*plotW
			v := s.value(a) / fullScale
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			y := midY - v*plotH
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
		dc.DrawString(s.name, margin+float64(i)*20, 16)
	}
	return dc, nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "adxl345plot: %s.\n", err)
		os.Exit(1)
	}
}
