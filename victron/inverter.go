package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// InverterData is a Phoenix Inverter reading.
type InverterData struct {
	DeviceState     OperationMode
	Alarm           AlarmReason
	BatteryVoltage  *float64
	AcApparentPower *float64
	AcVoltage       *float64
	AcCurrent       *float64
}

func parseInverter(r *bitreader.Reader) (*InverterData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	alarm, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	batteryVoltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	acApparentPower, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	acVoltage, err := r.ReadUnsigned(15)
	if err != nil {
		return nil, err
	}
	acCurrent, err := r.ReadUnsigned(11)
	if err != nil {
		return nil, err
	}

	return &InverterData{
		DeviceState:     OperationMode(deviceState),
		Alarm:           AlarmReason(alarm),
		BatteryVoltage:  optionalS(batteryVoltage, 0x7FFF, scaledSigned(0.01)),
		AcApparentPower: optionalU(acApparentPower, 0xFFFF, scaled(1)),
		AcVoltage:       optionalU(acVoltage, 0x7FFF, scaled(0.01)),
		AcCurrent:       optionalU(acCurrent, 0x7FF, scaled(0.1)),
	}, nil
}
