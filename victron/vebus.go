package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// VEBusData is a VE.Bus system (MultiPlus/Quattro) reading.
type VEBusData struct {
	DeviceState        OperationMode
	Error              ChargerError
	BatteryCurrent     *float64
	BatteryVoltage     *float64
	AcInState          *ACInState
	AcInPower          *float64
	AcOutPower         float64
	Alarm              *AlarmNotification
	BatteryTemperature *float64
	SOC                *float64
}

func parseVEBus(r *bitreader.Reader) (*VEBusData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	errorCode, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	batteryCurrent, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	batteryVoltage, err := r.ReadUnsigned(14)
	if err != nil {
		return nil, err
	}
	acInStateRaw, err := r.ReadUnsigned(2)
	if err != nil {
		return nil, err
	}
	acInPower, err := r.ReadSigned(19)
	if err != nil {
		return nil, err
	}
	acOutPower, err := r.ReadSigned(19)
	if err != nil {
		return nil, err
	}
	alarmRaw, err := r.ReadUnsigned(2)
	if err != nil {
		return nil, err
	}
	batteryTemperature, err := r.ReadUnsigned(7)
	if err != nil {
		return nil, err
	}
	soc, err := r.ReadUnsigned(7)
	if err != nil {
		return nil, err
	}

	data := &VEBusData{
		DeviceState:        OperationMode(deviceState),
		Error:              ChargerError(errorCode),
		BatteryCurrent:     optionalS(batteryCurrent, 0x7FFF, scaledSigned(0.1)),
		BatteryVoltage:     optionalU(batteryVoltage, 0x3FFF, scaled(0.01)),
		AcInPower:          optionalS(acInPower, sext19(0x3FFFF), scaledSigned(1)),
		AcOutPower:         float64(acOutPower),
		BatteryTemperature: optionalU(batteryTemperature, 0x7F, func(raw uint64) float64 { return float64(raw) - 40 }),
		SOC:                optionalU(soc, 0x7F, scaled(1)),
	}

	if acInStateRaw != 3 {
		s := ACInState(acInStateRaw)
		data.AcInState = &s
	}
	if alarmRaw != 3 {
		a := AlarmNotification(alarmRaw)
		data.Alarm = &a
	}

	return data, nil
}

// sext19 sign-extends a raw 19-bit sentinel so it can be compared against a
// value already produced by ReadSigned(19).
func sext19(raw uint64) int64 {
	return bitreader.ToSigned(raw, 19)
}
