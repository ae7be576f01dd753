// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl345

// Register is the address of one of the device's registers. The address
// space is fixed by the datasheet; 0x01 to 0x1C are reserved and must
// never be accessed.
type Register byte

const (
	// RegDevID holds the fixed device ID, 0xE5 for an ADXL345.
	RegDevID Register = 0x00
	// RegThreshTap is the tap threshold, 62.5 mg/LSB.
	RegThreshTap Register = 0x1D
	// RegOfsX, RegOfsY and RegOfsZ are the per axis offset trims in twos
	// complement, 15.6 mg/LSB. The device adds them to each sample before
	// it reaches the data registers.
	RegOfsX Register = 0x1E
	RegOfsY Register = 0x1F
	RegOfsZ Register = 0x20
	// RegDur is the maximum tap duration, 625 µs/LSB.
	RegDur Register = 0x21
	// RegLatent is the tap latency, 1.25 ms/LSB.
	RegLatent Register = 0x22
	// RegWindow is the second tap window, 1.25 ms/LSB.
	RegWindow Register = 0x23
	// RegThreshAct is the activity threshold, 62.5 mg/LSB.
	RegThreshAct Register = 0x24
	// RegThreshInact is the inactivity threshold, 62.5 mg/LSB.
	RegThreshInact Register = 0x25
	// RegTimeInact is the inactivity time, 1 s/LSB.
	RegTimeInact Register = 0x26
	// RegActInactCtl selects the axes used for activity and inactivity
	// detection.
	RegActInactCtl Register = 0x27
	// RegThreshFF is the free-fall threshold, 62.5 mg/LSB.
	RegThreshFF Register = 0x28
	// RegTimeFF is the free-fall time, 5 ms/LSB.
	RegTimeFF Register = 0x29
	// RegTapAxes selects the axes used for tap detection.
	RegTapAxes Register = 0x2A
	// RegActTapStatus reports which axis caused a tap or activity event.
	RegActTapStatus Register = 0x2B
	// RegBWRate controls the output data rate and low power mode.
	RegBWRate Register = 0x2C
	// RegPowerCtl controls standby, measurement, sleep and auto-sleep.
	RegPowerCtl Register = 0x2D
	// RegIntEnable enables interrupt sources.
	RegIntEnable Register = 0x2E
	// RegIntMap routes each interrupt source to INT1 or INT2.
	RegIntMap Register = 0x2F
	// RegIntSource reports pending interrupt sources.
	RegIntSource Register = 0x30
	// RegDataFormat controls the g-range, resolution and self-test.
	RegDataFormat Register = 0x31
	// RegDataX0 through RegDataZ1 are the output sample, three little
	// endian int16 pairs. They must be read in a single burst so the
	// device cannot update the sample between bytes.
	RegDataX0 Register = 0x32
	RegDataX1 Register = 0x33
	RegDataY0 Register = 0x34
	RegDataY1 Register = 0x35
	RegDataZ0 Register = 0x36
	RegDataZ1 Register = 0x37
	// RegFIFOCtl controls the FIFO mode and watermark.
	RegFIFOCtl Register = 0x38
	// RegFIFOStatus reports the FIFO fill level.
	RegFIFOStatus Register = 0x39
)

type regAccess uint8

const (
	readOnly regAccess = iota
	readWrite
)

// regInfo describes one register: width is 2 when the register is the low
// byte of a little endian 16 bit pair, 1 otherwise.
type regInfo struct {
	width  uint8
	access regAccess
}

// regMap is the full register map of the device. Addresses, widths and
// access modes come straight from the datasheet and are never computed.
var regMap = map[Register]regInfo{
	RegDevID:        {1, readOnly},
	RegThreshTap:    {1, readWrite},
	RegOfsX:         {1, readWrite},
	RegOfsY:         {1, readWrite},
	RegOfsZ:         {1, readWrite},
	RegDur:          {1, readWrite},
	RegLatent:       {1, readWrite},
	RegWindow:       {1, readWrite},
	RegThreshAct:    {1, readWrite},
	RegThreshInact:  {1, readWrite},
	RegTimeInact:    {1, readWrite},
	RegActInactCtl:  {1, readWrite},
	RegThreshFF:     {1, readWrite},
	RegTimeFF:       {1, readWrite},
	RegTapAxes:      {1, readWrite},
	RegActTapStatus: {1, readOnly},
	RegBWRate:       {1, readWrite},
	RegPowerCtl:     {1, readWrite},
	RegIntEnable:    {1, readWrite},
	RegIntMap:       {1, readWrite},
	RegIntSource:    {1, readOnly},
	RegDataFormat:   {1, readWrite},
	RegDataX0:       {2, readOnly},
	RegDataX1:       {1, readOnly},
	RegDataY0:       {2, readOnly},
	RegDataY1:       {1, readOnly},
	RegDataZ0:       {2, readOnly},
	RegDataZ1:       {1, readOnly},
	RegFIFOCtl:      {1, readWrite},
	RegFIFOStatus:   {1, readOnly},
}

// Range selects the full scale measurement range.
type Range byte

// Possible measurement ranges, the two low bits of RegDataFormat.
const (
	Range2g  Range = 0x00
	Range4g  Range = 0x01
	Range8g  Range = 0x02
	Range16g Range = 0x03
)

func (r Range) String() string {
	switch r {
	case Range2g:
		return "±2g"
	case Range4g:
		return "±4g"
	case Range8g:
		return "±8g"
	case Range16g:
		return "±16g"
	}
	return "±?g"
}

// Format holds the flag bits of RegDataFormat, the range bits excluded.
type Format byte

const (
	// SelfTest applies an electrostatic force to the sensor, shifting the
	// output so the self-test response can be checked.
	SelfTest Format = 0x80
	// ThreeWire puts the SPI interface in 3-wire mode.
	ThreeWire Format = 0x40
	// InvertInterrupt makes the interrupt pins active low.
	InvertInterrupt Format = 0x20
	// FullResolution keeps the step at 3.9 mg/LSB at every range by
	// growing the output bit depth with the range.
	FullResolution Format = 0x08
	// JustifyLeft selects left justified (MSB) output instead of the
	// default right justified mode with sign extension.
	JustifyLeft Format = 0x04

	formatMask Format = SelfTest | ThreeWire | InvertInterrupt | FullResolution | JustifyLeft
)

// PowerMode holds the flag bits of RegPowerCtl.
type PowerMode byte

const (
	// Link serializes activity and inactivity detection.
	Link PowerMode = 0x20
	// AutoSleep switches the device to sleep when inactivity is detected.
	// Only meaningful together with Link.
	AutoSleep PowerMode = 0x10
	// Measure enables measurement; cleared, the device is in standby.
	Measure PowerMode = 0x08
	// Sleep puts the device in sleep mode, sampling at the wakeup rate.
	Sleep PowerMode = 0x04

	// Wakeup rates used during sleep, bits 0-1.
	Wakeup8Hz PowerMode = 0x00
	Wakeup4Hz PowerMode = 0x01
	Wakeup2Hz PowerMode = 0x02
	Wakeup1Hz PowerMode = 0x03

	powerMask PowerMode = Link | AutoSleep | Measure | Sleep | Wakeup1Hz
)

// Rate selects the output data rate, the four low bits of RegBWRate.
type Rate byte

// Possible output data rates. The device powers up at Rate100Hz.
const (
	Rate0Hz10  Rate = 0x00
	Rate0Hz20  Rate = 0x01
	Rate0Hz39  Rate = 0x02
	Rate0Hz78  Rate = 0x03
	Rate1Hz56  Rate = 0x04
	Rate3Hz13  Rate = 0x05
	Rate6Hz25  Rate = 0x06
	Rate12Hz5  Rate = 0x07
	Rate25Hz   Rate = 0x08
	Rate50Hz   Rate = 0x09
	Rate100Hz  Rate = 0x0A
	Rate200Hz  Rate = 0x0B
	Rate400Hz  Rate = 0x0C
	Rate800Hz  Rate = 0x0D
	Rate1600Hz Rate = 0x0E
	Rate3200Hz Rate = 0x0F

	rateMask Rate = 0x0F
	lowPower Rate = 0x10
)

// Interrupt is a bit mask of interrupt sources, used by RegIntEnable,
// RegIntMap and RegIntSource.
type Interrupt byte

const (
	DataReady  Interrupt = 0x80
	SingleTap  Interrupt = 0x40
	DoubleTap  Interrupt = 0x20
	Activity   Interrupt = 0x10
	Inactivity Interrupt = 0x08
	FreeFall   Interrupt = 0x04
	Watermark  Interrupt = 0x02
	Overrun    Interrupt = 0x01
)

// TapMode selects the axes participating in tap detection, RegTapAxes.
type TapMode byte

const (
	// SuppressDoubleTap rejects a double tap when the acceleration exceeds
	// the tap threshold between taps.
	SuppressDoubleTap TapMode = 0x08
	TapX              TapMode = 0x04
	TapY              TapMode = 0x02
	TapZ              TapMode = 0x01

	tapMask TapMode = SuppressDoubleTap | TapX | TapY | TapZ
)

// ActivityMode selects the axes and coupling for activity and inactivity
// detection, RegActInactCtl. All eight bits are defined so any value is
// legal.
type ActivityMode byte

const (
	ActivityAC   ActivityMode = 0x80
	ActivityX    ActivityMode = 0x40
	ActivityY    ActivityMode = 0x20
	ActivityZ    ActivityMode = 0x10
	InactivityAC ActivityMode = 0x08
	InactivityX  ActivityMode = 0x04
	InactivityY  ActivityMode = 0x02
	InactivityZ  ActivityMode = 0x01
)

// FIFOMode selects the FIFO operating mode, the two high bits of
// RegFIFOCtl.
type FIFOMode byte

const (
	// FIFOBypass disables the FIFO.
	FIFOBypass FIFOMode = 0x00
	// FIFOFill collects samples until the FIFO is full, then stops.
	FIFOFill FIFOMode = 0x40
	// FIFOStream keeps the newest samples, discarding the oldest.
	FIFOStream FIFOMode = 0x80
	// FIFOTrigger keeps samples from before a trigger event.
	FIFOTrigger FIFOMode = 0xC0

	fifoTriggerINT2 byte = 0x20
	fifoSamplesMask byte = 0x1F
)
