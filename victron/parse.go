// Package victron decodes Victron Energy's Instant Readout BLE
// manufacturer-data advertisements into typed Reading values.
package victron

import (
	"fmt"

	"github.com/chadmayfield/victron-ble/bitreader"
	"github.com/chadmayfield/victron-ble/cipher"
	"github.com/chadmayfield/victron-ble/envelope"
)

// DetectDeviceTypeRaw parses just enough of raw to choose a device kind,
// without a key. Mirrors the "no key required" half of the consumer API.
func DetectDeviceTypeRaw(raw []byte) (DeviceKind, error) {
	frame, err := envelope.Parse(raw)
	if err != nil {
		return DeviceUnknown, err
	}
	return DetectDeviceType(frame.ModelID, frame.ReadoutType), nil
}

// Parse decrypts and decodes a single Instant Readout advertisement: it
// parses the envelope, decrypts the body with key, dispatches on model id
// and readout type, and hands the decrypted bytes to the matching
// per-device parser.
func Parse(raw []byte, key [cipher.KeyLen]byte) (Reading, error) {
	frame, err := envelope.Parse(raw)
	if err != nil {
		return Reading{}, err
	}

	decrypted, err := cipher.Decrypt(frame, key)
	if err != nil {
		return Reading{}, err
	}

	kind := DetectDeviceType(frame.ModelID, frame.ReadoutType)
	reading := Reading{
		ModelID:     frame.ModelID,
		ModelName:   ModelName(frame.ModelID),
		Kind:        kind,
		ReadoutType: frame.ReadoutType,
	}

	r := bitreader.New(decrypted)

	switch kind {
	case DeviceBatteryMonitor:
		data, err := parseBatteryMonitor(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.BatteryMonitor = data
	case DeviceBatterySense:
		full, err := parseBatteryMonitor(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.BatterySense = &BatterySenseData{
			Voltage:     full.Voltage,
			Temperature: full.Temperature,
		}
	case DeviceDcEnergyMeter:
		data, err := parseDcEnergyMeter(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.DcEnergyMeter = data
	case DeviceDcDcConverter:
		data, err := parseDcDcConverter(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.DcDcConverter = data
	case DeviceAcCharger:
		data, err := parseAcCharger(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.AcCharger = data
	case DeviceSolarCharger:
		data, err := parseSolarCharger(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.SolarCharger = data
	case DeviceInverter:
		data, err := parseInverter(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.Inverter = data
	case DeviceVEBus:
		data, err := parseVEBus(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.VEBus = data
	case DeviceMultiRS:
		data, err := parseMultiRS(decrypted)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.MultiRS = data
	case DeviceOrionXS:
		data, err := parseOrionXS(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.OrionXS = data
	case DeviceLynxSmartBMS:
		data, err := parseLynxSmartBMS(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.LynxSmartBMS = data
	case DeviceSmartLithium:
		data, err := parseSmartLithium(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.SmartLithium = data
	case DeviceSmartBatteryProtect:
		data, err := parseSmartBatteryProtect(r)
		if err != nil {
			return Reading{}, malformedPayload(err)
		}
		reading.SmartBatteryProtect = data
	default:
		return Reading{}, fmt.Errorf("%w: model 0x%04x readout_type 0x%02x", ErrUnknownDevice, frame.ModelID, frame.ReadoutType)
	}

	return reading, nil
}
