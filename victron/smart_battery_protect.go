package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// SmartBatteryProtectData is a Smart BatteryProtect reading.
type SmartBatteryProtectData struct {
	DeviceState    OperationMode
	OutputState    OutputState
	ErrorCode      uint8
	AlarmReason    AlarmReason
	WarningReason  AlarmReason
	InputVoltage   *float64
	OutputVoltage  *float64
	OffReason      OffReason
}

func parseSmartBatteryProtect(r *bitreader.Reader) (*SmartBatteryProtectData, error) {
	deviceState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	outputState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	errorCode, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	alarmReason, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	warningReason, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	inputVoltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	outputVoltage, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	offReason, err := r.ReadUnsigned(32)
	if err != nil {
		return nil, err
	}

	return &SmartBatteryProtectData{
		DeviceState:   OperationMode(deviceState),
		OutputState:   OutputState(outputState),
		ErrorCode:     uint8(errorCode),
		AlarmReason:   AlarmReason(alarmReason),
		WarningReason: AlarmReason(warningReason),
		InputVoltage:  optionalS(inputVoltage, 0x7FFF, scaledSigned(0.01)),
		OutputVoltage: optionalU(outputVoltage, 0xFFFF, scaled(0.01)),
		OffReason:     OffReason(offReason),
	}, nil
}
