package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// LynxSmartBMSData is a Lynx Smart BMS reading. io_status and error_flags
// are not fully documented by Victron, so they're kept opaque and exposed
// as raw values rather than decoded bit-by-bit.
type LynxSmartBMSData struct {
	ErrorFlags         uint8
	RemainingMinutes   *float64
	Voltage            *float64
	Current            float64
	IOStatus           uint16
	AlarmFlags         uint32
	SOC                *float64
	ConsumedAh         *float64
	BatteryTemperature *float64
}

func parseLynxSmartBMS(r *bitreader.Reader) (*LynxSmartBMSData, error) {
	errorFlags, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	remainingMins, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	voltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	current, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	ioStatus, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	alarmFlags, err := r.ReadUnsigned(18)
	if err != nil {
		return nil, err
	}
	soc, err := r.ReadUnsigned(10)
	if err != nil {
		return nil, err
	}
	consumedAh, err := r.ReadUnsigned(20)
	if err != nil {
		return nil, err
	}
	batteryTemperature, err := r.ReadUnsigned(7)
	if err != nil {
		return nil, err
	}

	return &LynxSmartBMSData{
		ErrorFlags:         uint8(errorFlags),
		RemainingMinutes:   optionalU(remainingMins, 0xFFFF, scaled(1)),
		Voltage:            optionalS(voltage, 0x7FFF, scaledSigned(0.01)),
		Current:            float64(current) * 0.1,
		IOStatus:           uint16(ioStatus),
		AlarmFlags:         uint32(alarmFlags),
		SOC:                optionalU(soc, 0x3FF, scaled(0.1)),
		ConsumedAh:         optionalU(consumedAh, 0xFFFFF, scaled(0.1)),
		BatteryTemperature: optionalU(batteryTemperature, 0x7F, func(raw uint64) float64 { return float64(raw) - 40 }),
	}, nil
}
