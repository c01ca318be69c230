package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// SolarChargerData is a BlueSolar/SmartSolar MPPT charge controller reading.
type SolarChargerData struct {
	ChargeState             OperationMode
	ChargerError            *ChargerError
	BatteryVoltage          float64
	BatteryChargingCurrent  float64
	YieldToday              *float64
	SolarPower              *float64
	ExternalDeviceLoad      *float64
}

func parseSolarCharger(r *bitreader.Reader) (*SolarChargerData, error) {
	chargeState, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	chargerError, err := r.ReadUnsigned(8)
	if err != nil {
		return nil, err
	}
	batteryVoltage, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	batteryCurrent, err := r.ReadSigned(16)
	if err != nil {
		return nil, err
	}
	yieldToday, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	solarPower, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}
	externalLoad, err := r.ReadUnsigned(9)
	if err != nil {
		return nil, err
	}

	return &SolarChargerData{
		ChargeState:            OperationMode(chargeState),
		ChargerError:           optionalChargerError(chargerError),
		BatteryVoltage:         float64(batteryVoltage) * 0.01,
		BatteryChargingCurrent: float64(batteryCurrent) * 0.1,
		YieldToday:             optionalU(yieldToday, 0xFFFF, scaled(10)),
		SolarPower:             optionalU(solarPower, 0xFFFF, scaled(1)),
		ExternalDeviceLoad:     optionalU(externalLoad, 0x1FF, scaled(0.1)),
	}, nil
}
