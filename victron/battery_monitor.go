package victron

import "github.com/chadmayfield/victron-ble/bitreader"

// BatteryMonitorData is the decoded payload of a BMV or SmartShunt battery
// monitor reading.
type BatteryMonitorData struct {
	RemainingMinutes *float64
	Voltage          *float64
	Alarm            AlarmReason
	AuxMode          AuxMode
	StarterVoltage   *float64
	MidpointVoltage  *float64
	Temperature      *float64
	Current          *float64
	ConsumedAh       *float64
	SOC              *float64
}

func parseBatteryMonitor(r *bitreader.Reader) (*BatteryMonitorData, error) {
	remainingMins, err := r.ReadUnsigned(16)
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
	consumedAh, err := r.ReadUnsigned(20)
	if err != nil {
		return nil, err
	}
	soc, err := r.ReadUnsigned(10)
	if err != nil {
		return nil, err
	}

	data := &BatteryMonitorData{
		RemainingMinutes: optionalU(remainingMins, 0xFFFF, scaled(1)),
		Voltage:          optionalS(voltage, 0x7FFF, scaledSigned(0.01)),
		Alarm:            AlarmReason(alarm),
		AuxMode:          AuxMode(auxModeRaw),
		Current:          optionalS(current, 0x3FFFFF, scaledSigned(0.001)),
		ConsumedAh:       negatedTenth(consumedAh, 0xFFFFF),
		SOC:              optionalU(soc, 0x3FF, scaled(0.1)),
	}

	switch data.AuxMode {
	case AuxStarterVoltage:
		v := float64(bitreader.ToSigned(aux, 16)) * 0.01
		data.StarterVoltage = &v
	case AuxMidpointVoltage:
		v := float64(aux) * 0.01
		data.MidpointVoltage = &v
	case AuxTemperature:
		// No 0xFFFF sentinel check here: unlike DcEnergyMeter, the
		// original implementation doesn't guard this path, so an
		// all-ones aux value still converts to a (large) temperature.
		kelvin := float64(aux) / 100
		celsius := round2(kelvin - 273.15)
		data.Temperature = &celsius
	case AuxDisabled:
		// no aux field emitted
	}

	return data, nil
}

// negatedTenth maps consumed_ah's raw unsigned magnitude to its negative
// value in tenths, or absent at sentinel.
func negatedTenth(raw uint64, sentinel uint64) *float64 {
	if raw == sentinel {
		return nil
	}
	v := -float64(raw) * 0.1
	return &v
}

func round2(v float64) float64 {
	const p = 100
	if v < 0 {
		return -round2(-v)
	}
	return float64(int64(v*p+0.5)) / p
}
