package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// DcEnergyMeterData is a DC Energy Meter reading: a generic current/voltage
// sensor clamped on a source or load circuit, identified by MeterType.
type DcEnergyMeterData struct {
	MeterType       MeterType
	Voltage         *float64
	Alarm           AlarmReason
	AuxMode         AuxMode
	StarterVoltage  *float64
	Temperature     *float64
	Current         *float64
}

func parseDcEnergyMeter(r *bitreader.Reader) (*DcEnergyMeterData, error) {
	meterType, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	voltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	alarm, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	aux, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	auxModeRaw, err := r.ReadUnsigned(2)
	if err != nil {
		return nil, err
	}
	current, err := r.ReadSigned(22)
	if err != nil {
		return nil, err
	}

	data := &DcEnergyMeterData{
		MeterType: MeterType(meterType),
		Voltage:   optionalS(voltage, 0x7FFF, scaledSigned(0.01)),
		Alarm:     AlarmReason(alarm),
		AuxMode:   AuxMode(auxModeRaw),
		Current:   optionalS(current, 0x3FFFFF, scaledSigned(0.001)),
	}

	switch data.AuxMode {
	case AuxStarterVoltage:
		v := float64(bitreader.ToSigned(aux, 16)) * 0.01
		data.StarterVoltage = &v
	case AuxTemperature:
		if aux != 0xFFFF {
			kelvin := float64(aux) / 100
			celsius := round2(kelvin - 273.15)
			data.Temperature = &celsius
		}
	default:
		// MidpointVoltage and Disabled yield no aux field for this device.
	}

	return data, nil
}
