package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// OrionXSData is an Orion XS DC-DC charger reading. Field layout is based
// on community reverse engineering rather than a published Victron
// register map, so several fields carry no documented "not available"
// sentinel.
type OrionXSData struct {
	DeviceState    OperationMode
	ChargerError   *ChargerError
	OutputVoltage  *float64
	OutputCurrent  float64
	InputVoltage   float64
	InputCurrent   float64
	OffReason      OffReason
}

func parseOrionXS(r *bitreader.Reader) (*OrionXSData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	chargerError, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	outputVoltage, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	outputCurrent, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	inputVoltage, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	inputCurrent, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	offReason, err := r.ReadUnsigned(32)
	if err != nil {
		return nil, err
	}

	return &OrionXSData{
		DeviceState:   OperationMode(deviceState),
		ChargerError:  optionalChargerError(chargerError),
		OutputVoltage: optionalU(outputVoltage, 0xFFFF, scaled(0.01)),
		OutputCurrent: float64(outputCurrent) * 0.1,
		InputVoltage:  float64(inputVoltage) * 0.01,
		InputCurrent:  float64(inputCurrent) * 0.1,
		OffReason:     OffReason(offReason),
	}, nil
}
