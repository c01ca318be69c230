package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// AcChargerOutput is one of an AC charger's (up to three) output channels.
type AcChargerOutput struct {
	Voltage *float64
	Current *float64
}

// AcChargerData is a Phoenix Smart IP43 (or similar) AC charger reading.
type AcChargerData struct {
	DeviceState  OperationMode
	ChargerError *ChargerError
	Outputs      [3]AcChargerOutput
	Temperature  *float64
	AcCurrent    *float64
}

func parseAcCharger(r *bitreader.Reader) (*AcChargerData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	chargerError, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}

	data := &AcChargerData{
		DeviceState:  OperationMode(deviceState),
		ChargerError: optionalChargerError(chargerError),
	}

	for i := 0; i < 3; i++ {
		voltage, err := r.ReadUnsigned(13)
		if err != nil {
			return nil, err
		}
		current, err := r.ReadUnsigned(11)
		if err != nil {
			return nil, err
		}
		data.Outputs[i] = AcChargerOutput{
			Voltage: optionalU(voltage, 0x1FFF, scaled(0.01)),
			Current: optionalU(current, 0x7FF, scaled(0.1)),
		}
	}

	temperature, err := r.ReadUnsigned(7)
	if err != nil {
		return nil, err
	}
	acCurrent, err := r.ReadUnsigned(9)
	if err != nil {
		return nil, err
	}

	data.Temperature = optionalU(temperature, 0x7F, func(raw uint64) float64 { return float64(raw) - 40 })
	data.AcCurrent = optionalU(acCurrent, 0x1FF, scaled(0.1))

	return data, nil
}
