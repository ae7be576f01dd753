// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DeviceID is the value RegDevID reads back on an ADXL345. The driver
// never checks it; compare the result of Dev.DeviceID against this
// constant to validate wiring.
const DeviceID = 0xE5

// The two I²C addresses the device answers on, selected by the ALT
// ADDRESS pin.
const (
	I2CAddr    uint16 = 0x53 // ALT ADDRESS low
	I2CAltAddr uint16 = 0x1D // ALT ADDRESS high
)

// SPI connection parameters. The device requires mode 3, MSB first.
var (
	SpiFrequency = physic.KiloHertz * 50
	SpiMode      = spi.Mode3
	SpiBits      = 8
)

var (
	// ErrInvalidAddress is returned when the I²C address is neither
	// I2CAddr nor I2CAltAddr.
	ErrInvalidAddress = errors.New("I²C address must be 0x53 or 0x1D")

	// ErrInvalidRange is returned when a range is not one of the four
	// defined values.
	ErrInvalidRange = errors.New("invalid g-range")

	// ErrUnknownModeBit is returned when a mode value carries bits the
	// target register does not define.
	ErrUnknownModeBit = errors.New("unknown mode bit")

	// ErrReadOnlyRegister is returned on a write to a read-only register.
	ErrReadOnlyRegister = errors.New("register is read-only")

	// ErrUnknownRegister is returned when a register is not part of the
	// device's register map.
	ErrUnknownRegister = errors.New("register not in register map")

	// ErrInvalidWatermark is returned when a FIFO watermark does not fit
	// the 5 bit sample field.
	ErrInvalidWatermark = errors.New("FIFO watermark above 31")
)

// Opts holds the configuration applied while constructing a Dev.
type Opts struct {
	// Range is the full scale range to select.
	Range Range
	// FullResolution selects full resolution output, 3.9 mg/LSB at every
	// range, instead of the 10 bit mode.
	FullResolution bool
	// Rate is the output data rate to select. Zero leaves the device at
	// its power-on default of 100Hz.
	Rate Rate
	// TurnOnOnStart puts the device in measurement mode on start.
	TurnOnOnStart bool
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Range:          Range2g,
	FullResolution: true,
	TurnOnOnStart:  true,
}

// Dev is a driver for the ADXL345 3-axis accelerometer, connected either
// by I²C or SPI.
//
// The device's registers are the only copy of its configuration; the
// driver holds no mirror of them and re-reads RegDataFormat whenever a
// conversion needs the current scale. The bus handle is owned exclusively
// by the Dev and access is not serialized, so concurrent use must be
// guarded by the caller.
type Dev struct {
	t transport
}

// NewI2C returns a Dev that communicates with an ADXL345 over I²C at the
// given address and applies opts. Pass nil for DefaultOpts.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	switch addr {
	case I2CAddr, I2CAltAddr:
	default:
		return nil, fmt.Errorf("adxl345: %w, got %#02x", ErrInvalidAddress, addr)
	}
	d := &Dev{t: &i2cTransport{d: &i2c.Dev{Bus: b, Addr: addr}}}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI returns a Dev that communicates with an ADXL345 over 4-wire SPI
// and applies opts. Pass nil for DefaultOpts.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, err
	}
	d := &Dev{t: &spiTransport{c: c}}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init(opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	var flags Format
	if opts.FullResolution {
		flags |= FullResolution
	}
	if err := d.SetDataFormat(opts.Range, flags); err != nil {
		return err
	}
	if opts.Rate != 0 {
		if err := d.SetDataRate(opts.Rate, false); err != nil {
			return err
		}
	}
	if opts.TurnOnOnStart {
		return d.TurnOn()
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADXL345{%s}", d.t)
}

// Halt puts the device in standby.
//
// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return d.TurnOff()
}

// DeviceID reads the device ID register and returns its value unchecked.
// Anything but the DeviceID constant means the part on the bus is not an
// ADXL345 or the wiring is broken; acting on that is up to the caller.
func (d *Dev) DeviceID() (byte, error) {
	return d.readReg(RegDevID)
}

// SetPowerControl writes the power control register. Setting Measure
// moves the device from standby to continuous sampling; clearing it moves
// it back.
func (d *Dev) SetPowerControl(mode PowerMode) error {
	if bad := mode &^ powerMask; bad != 0 {
		return fmt.Errorf("adxl345: %w %#02x in power mode", ErrUnknownModeBit, byte(bad))
	}
	return d.writeReg(RegPowerCtl, byte(mode))
}

// TurnOn puts the device in measurement mode. Required before samples can
// be read.
func (d *Dev) TurnOn() error {
	return d.SetPowerControl(Measure)
}

// TurnOff puts the device in standby.
func (d *Dev) TurnOff() error {
	return d.SetPowerControl(0)
}

// SetDataFormat writes the range and the format flags. The range must be
// one of the four defined values and flags must only carry defined bits,
// otherwise the call fails before touching the bus.
func (d *Dev) SetDataFormat(r Range, flags Format) error {
	switch r {
	case Range2g, Range4g, Range8g, Range16g:
	default:
		return fmt.Errorf("adxl345: %w %#02x", ErrInvalidRange, byte(r))
	}
	if bad := flags &^ formatMask; bad != 0 {
		return fmt.Errorf("adxl345: %w %#02x in format", ErrUnknownModeBit, byte(bad))
	}
	return d.writeReg(RegDataFormat, byte(r)|byte(flags))
}

// DataFormat reads the range and format flags currently in force on the
// device.
func (d *Dev) DataFormat() (Range, Format, error) {
	v, err := d.readReg(RegDataFormat)
	if err != nil {
		return 0, 0, err
	}
	return Range(v & 0x03), Format(v) & formatMask, nil
}

// SetOffset writes the three axis offset trims in one burst. The device
// adds each trim, 15.6 mg/LSB, to the raw samples before they reach the
// data registers.
func (d *Dev) SetOffset(x, y, z int8) error {
	return d.writeRegs(RegOfsX, []byte{byte(x), byte(y), byte(z)})
}

// Offset reads back the three axis offset trims.
func (d *Dev) Offset() (x, y, z int8, err error) {
	var buf [3]byte
	if err = d.readRegs(RegOfsX, buf[:]); err != nil {
		return 0, 0, 0, err
	}
	return int8(buf[0]), int8(buf[1]), int8(buf[2]), nil
}

// SetDataRate selects the output data rate. In low power mode the device
// saves power at the cost of noise; only rates between 12.5Hz and 400Hz
// change behavior there.
func (d *Dev) SetDataRate(rate Rate, lowPowerMode bool) error {
	if bad := rate &^ rateMask; bad != 0 {
		return fmt.Errorf("adxl345: %w %#02x in rate", ErrUnknownModeBit, byte(bad))
	}
	v := byte(rate)
	if lowPowerMode {
		v |= byte(lowPower)
	}
	return d.writeReg(RegBWRate, v)
}

// DataRate reads the output data rate and the low power flag.
func (d *Dev) DataRate() (Rate, bool, error) {
	v, err := d.readReg(RegBWRate)
	if err != nil {
		return 0, false, err
	}
	return Rate(v) & rateMask, v&byte(lowPower) != 0, nil
}

// SetTap configures tap detection: threshold at 62.5 mg/LSB, maximum tap
// duration at 625 µs/LSB, double tap latency and window at 1.25 ms/LSB. A
// zero duration disables tap detection; a zero latency or window disables
// double taps.
func (d *Dev) SetTap(thresh, duration, latency, window byte) error {
	if err := d.writeReg(RegThreshTap, thresh); err != nil {
		return err
	}
	// Duration, latency and window are contiguous; the offset trims sit
	// between them and the threshold.
	return d.writeRegs(RegDur, []byte{duration, latency, window})
}

// TapControl selects which axes take part in tap detection.
func (d *Dev) TapControl(mode TapMode) error {
	if bad := mode &^ tapMask; bad != 0 {
		return fmt.Errorf("adxl345: %w %#02x in tap mode", ErrUnknownModeBit, byte(bad))
	}
	return d.writeReg(RegTapAxes, byte(mode))
}

// SetActivity sets the activity threshold, 62.5 mg/LSB.
func (d *Dev) SetActivity(thresh byte) error {
	return d.writeReg(RegThreshAct, thresh)
}

// SetInactivity sets the inactivity threshold, 62.5 mg/LSB, and the time
// acceleration must stay below it, 1 s/LSB.
func (d *Dev) SetInactivity(thresh, time byte) error {
	return d.writeRegs(RegThreshInact, []byte{thresh, time})
}

// ActivityControl selects the axes and AC/DC coupling for activity and
// inactivity detection.
func (d *Dev) ActivityControl(mode ActivityMode) error {
	return d.writeReg(RegActInactCtl, byte(mode))
}

// SetFreeFall sets the free-fall threshold, 62.5 mg/LSB, and time,
// 5 ms/LSB. Recommended values are 300-600 mg and 100-350 ms.
func (d *Dev) SetFreeFall(thresh, time byte) error {
	return d.writeRegs(RegThreshFF, []byte{thresh, time})
}

// EnableInterrupts enables the given interrupt sources and disables the
// rest.
func (d *Dev) EnableInterrupts(mask Interrupt) error {
	return d.writeReg(RegIntEnable, byte(mask))
}

// MapInterrupts routes the given sources to the INT2 pin; all others go
// to INT1.
func (d *Dev) MapInterrupts(mask Interrupt) error {
	return d.writeReg(RegIntMap, byte(mask))
}

// InterruptSource reads the pending interrupt sources. Reading clears the
// latched ones.
func (d *Dev) InterruptSource() (Interrupt, error) {
	v, err := d.readReg(RegIntSource)
	return Interrupt(v), err
}

// SetFIFO configures the FIFO. samples is the watermark, 0 to 31; with
// triggerINT2 the trigger event in FIFOTrigger mode is taken from INT2
// instead of INT1.
func (d *Dev) SetFIFO(mode FIFOMode, triggerINT2 bool, samples byte) error {
	if bad := byte(mode) &^ 0xC0; bad != 0 {
		return fmt.Errorf("adxl345: %w %#02x in FIFO mode", ErrUnknownModeBit, bad)
	}
	if samples&^fifoSamplesMask != 0 {
		return fmt.Errorf("adxl345: %w, got %d", ErrInvalidWatermark, samples)
	}
	v := byte(mode)
	if triggerINT2 {
		v |= fifoTriggerINT2
	}
	return d.writeReg(RegFIFOCtl, v|samples)
}

// FIFOStatus reports the number of samples held in the FIFO and whether a
// trigger event occurred.
func (d *Dev) FIFOStatus() (entries int, triggered bool, err error) {
	v, err := d.readReg(RegFIFOStatus)
	if err != nil {
		return 0, false, err
	}
	return int(v & 0x3F), v&0x80 != 0, nil
}

// ReadRaw reads one sample as raw counts. All six data bytes come from a
// single burst so the device cannot slip a new sample in between axes.
func (d *Dev) ReadRaw() (Raw, error) {
	var buf [6]byte
	if err := d.readRegs(RegDataX0, buf[:]); err != nil {
		return Raw{}, err
	}
	return Raw{
		X: int16(binary.LittleEndian.Uint16(buf[0:2])),
		Y: int16(binary.LittleEndian.Uint16(buf[2:4])),
		Z: int16(binary.LittleEndian.Uint16(buf[4:6])),
	}, nil
}

// ReadAcceleration reads one sample and converts it to m/s². The scale is
// taken from a fresh read of RegDataFormat, one extra bus transaction per
// sample, so a reconfiguration between samples can never pair counts with
// the wrong scale.
func (d *Dev) ReadAcceleration() (Acceleration, error) {
	r, flags, err := d.DataFormat()
	if err != nil {
		return Acceleration{}, err
	}
	raw, err := d.ReadRaw()
	if err != nil {
		return Acceleration{}, err
	}
	return raw.Acceleration(r, flags), nil
}

// readReg reads a single register.
func (d *Dev) readReg(reg Register) (byte, error) {
	var buf [1]byte
	if err := d.readRegs(reg, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readRegs reads len(buf) consecutive registers starting at reg in one
// burst transaction.
func (d *Dev) readRegs(reg Register, buf []byte) error {
	for i := range buf {
		if _, ok := regMap[reg+Register(i)]; !ok {
			return fmt.Errorf("adxl345: %w: %#02x", ErrUnknownRegister, byte(reg)+byte(i))
		}
	}
	return d.t.read(reg, buf)
}

// writeReg writes a single register.
func (d *Dev) writeReg(reg Register, v byte) error {
	return d.writeRegs(reg, []byte{v})
}

// writeRegs writes len(data) consecutive registers starting at reg in one
// burst transaction. The whole burst is checked against the register map
// before any bus traffic so a bad call cannot half-configure the device.
func (d *Dev) writeRegs(reg Register, data []byte) error {
	for i := range data {
		info, ok := regMap[reg+Register(i)]
		if !ok {
			return fmt.Errorf("adxl345: %w: %#02x", ErrUnknownRegister, byte(reg)+byte(i))
		}
		if info.access == readOnly {
			return fmt.Errorf("adxl345: %w: %#02x", ErrReadOnlyRegister, byte(reg)+byte(i))
		}
	}
	return d.t.write(reg, data)
}

// Raw is one sample of the three axes as sign extended counts.
type Raw struct {
	X, Y, Z int16
}

// Acceleration converts the sample to m/s² using the scale for the given
// range and format.
func (r Raw) Acceleration(rng Range, flags Format) Acceleration {
	s := scaleFor(rng, flags)
	return Acceleration{
		X: convert(r.X, s),
		Y: convert(r.Y, s),
		Z: convert(r.Z, s),
	}
}

// String returns a string representation of the raw sample.
func (r Raw) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", r.X, r.Y, r.Z)
}

// Acceleration is one sample of the three axes in m/s².
type Acceleration struct {
	X, Y, Z float64
}

// String returns a string representation of the acceleration.
func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.3fm/s² Y:%.3fm/s² Z:%.3fm/s²", a.X, a.Y, a.Z)
}

var _ conn.Resource = &Dev{}
