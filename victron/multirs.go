package victron

import (
	"encoding/binary"
	"fmt"
)

// MultiRSData is a Multi RS inverter/charger reading. Unlike the other
// device parsers, its payload is byte-aligned rather than bit-packed, so it
// decodes straight off the buffer with encoding/binary instead of BitReader.
type MultiRSData struct {
	DeviceState    OperationMode
	ChargerError   *ChargerError
	BatteryCurrent *float64
	BatteryVoltage *float64
	ActiveAcIn     *uint8
	AcInPower      *float64
	AcOutPower     float64
	PvPower        *float64
	YieldToday     *float64
}

const multiRSMinLen = 14

func parseMultiRS(decrypted []byte) (*MultiRSData, error) {
	if len(decrypted) < multiRSMinLen {
		return nil, fmt.Errorf("multirs: payload length %d < %d", len(decrypted), multiRSMinLen)
	}

	deviceState := decrypted[0]
	chargerError := decrypted[1]
	batteryCurrent := int16(binary.LittleEndian.Uint16(decrypted[2:4]))
	combined := binary.LittleEndian.Uint16(decrypted[4:6])
	acInPower := int16(binary.LittleEndian.Uint16(decrypted[6:8]))
	acOutPower := int16(binary.LittleEndian.Uint16(decrypted[8:10]))
	pvPower := binary.LittleEndian.Uint16(decrypted[10:12])
	yieldToday := binary.LittleEndian.Uint16(decrypted[12:14])

	batteryVoltageRaw := combined & 0x3FFF
	activeAcInRaw := uint8(combined >> 14)

	data := &MultiRSData{
		DeviceState:    OperationMode(deviceState),
		ChargerError:   optionalChargerError(uint64(chargerError)),
		BatteryCurrent: optionalS(int64(batteryCurrent), 0x7FFF, scaledSigned(0.1)),
		BatteryVoltage: optionalU(uint64(batteryVoltageRaw), 0x3FFF, scaled(0.01)),
		AcInPower:      optionalS(int64(acInPower), 0x7FFF, scaledSigned(1)),
		AcOutPower:     float64(acOutPower),
		PvPower:        optionalU(uint64(pvPower), 0xFFFF, scaled(1)),
		YieldToday:     optionalU(uint64(yieldToday), 0xFFFF, scaled(0.01)),
	}
	if activeAcInRaw != 3 {
		v := activeAcInRaw
		data.ActiveAcIn = &v
	}

	return data, nil
}
