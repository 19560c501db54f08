package sensor

import (
	"encoding/binary"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

const (
	sht3xDefaultAddr = 0x44

	// Max measurement duration for high repeatability per the datasheet.
	measureDelay = 15 * time.Millisecond
)

// Single-shot measurement, high repeatability, clock stretching disabled.
var cmdMeasure = []byte{0x2C, 0x06}

// Operating range per the datasheet; values outside it are acquisition
// failures, not plausible readings.
const (
	minTempC    = -40.0
	maxTempC    = 125.0
	minHumidity = 0.0
	maxHumidity = 100.0
)

type SHT3xConfig struct {
	// Bus is the I²C bus name, e.g. "/dev/i2c-1". Empty selects the first
	// available bus.
	Bus string
	// Addr is the 7-bit device address. Zero selects the default 0x44.
	Addr uint16
}

// SHT3x reads a Sensirion SHT3x-class sensor over I²C.
type SHT3x struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

func NewSHT3x(cfg SHT3xConfig) (*SHT3x, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", cfg.Bus, err)
	}
	addr := cfg.Addr
	if addr == 0 {
		addr = sht3xDefaultAddr
	}
	return &SHT3x{bus: bus, dev: i2c.Dev{Bus: bus, Addr: addr}}, nil
}

func (s *SHT3x) Acquire() (model.Reading, error) {
	if err := s.dev.Tx(cmdMeasure, nil); err != nil {
		return model.Reading{}, fmt.Errorf("%w: send measure command: %v", ErrAcquisition, err)
	}
	time.Sleep(measureDelay)

	raw := make([]byte, 6)
	if err := s.dev.Tx(nil, raw); err != nil {
		return model.Reading{}, fmt.Errorf("%w: read measurement: %v", ErrAcquisition, err)
	}
	return decodeFrame(raw)
}

func (s *SHT3x) Close() error {
	return s.bus.Close()
}

// decodeFrame converts the 6-byte measurement frame (temperature word, CRC,
// humidity word, CRC) into a Reading.
func decodeFrame(raw []byte) (model.Reading, error) {
	if len(raw) != 6 {
		return model.Reading{}, fmt.Errorf("%w: short frame (%d bytes)", ErrAcquisition, len(raw))
	}
	if crc8(raw[0:2]) != raw[2] {
		return model.Reading{}, fmt.Errorf("%w: temperature crc mismatch", ErrAcquisition)
	}
	if crc8(raw[3:5]) != raw[5] {
		return model.Reading{}, fmt.Errorf("%w: humidity crc mismatch", ErrAcquisition)
	}

	tempRaw := binary.BigEndian.Uint16(raw[0:2])
	humRaw := binary.BigEndian.Uint16(raw[3:5])
	r := model.Reading{
		Temperature: float64(tempRaw)*175.0/65535.0 - 45.0,
		Humidity:    float64(humRaw) * 100.0 / 65535.0,
	}
	if r.Temperature < minTempC || r.Temperature > maxTempC {
		return model.Reading{}, fmt.Errorf("%w: temperature %.2f out of range", ErrAcquisition, r.Temperature)
	}
	if r.Humidity < minHumidity || r.Humidity > maxHumidity {
		return model.Reading{}, fmt.Errorf("%w: humidity %.2f out of range", ErrAcquisition, r.Humidity)
	}
	return r, nil
}

// crc8 implements the SHT3x checksum: polynomial 0x31, init 0xFF, no final
// XOR. The datasheet example is CRC(0xBEEF) = 0x92.
func crc8(data []byte) byte {
	crc := byte(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
