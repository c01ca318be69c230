package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// DcDcConverterData is an Orion Smart DC-DC charger reading.
type DcDcConverterData struct {
	DeviceState   *OperationMode
	ChargerError  *ChargerError
	InputVoltage  *float64
	OutputVoltage *float64
	OffReason     OffReason
}

func parseDcDcConverter(r *bitreader.Reader) (*DcDcConverterData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	chargerError, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	inputVoltage, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	outputVoltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	offReason, err := r.ReadUnsigned(32)
	if err != nil {
		return nil, err
	}

	return &DcDcConverterData{
		DeviceState:   optionalOperationMode(deviceState),
		ChargerError:  optionalChargerError(chargerError),
		InputVoltage:  optionalU(inputVoltage, 0xFFFF, scaled(0.01)),
		OutputVoltage: optionalS(outputVoltage, 0x7FFF, scaledSigned(0.01)),
		OffReason:     OffReason(offReason),
	}, nil
}
