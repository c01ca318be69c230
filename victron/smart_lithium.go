package victron

import (
	"math"
	"math/bits"

	"github.com/chadmayfield/victron-ble/bitreader"
)

// SmartLithiumData is a Smart Lithium battery reading: individual cell
// voltages plus balancer state. bms_flags and error_flags are opaque,
// undocumented bitfields kept raw.
type SmartLithiumData struct {
	BMSFlags           uint32
	ErrorFlags         uint16
	CellVoltages       [8]*float64
	BatteryVoltage     *float64
	BalancerStatus     *BalancerStatus
	BatteryTemperature *float64
}

func parseSmartLithium(r *bitreader.Reader) (*SmartLithiumData, error) {
	bmsFlags, err := r.ReadUnsigned(32)
	if err != nil {
		return nil, err
	}
	errorFlags, err := r.ReadUnsigned(16)
	if err != nil {
		return nil, err
	}

	data := &SmartLithiumData{
		// bms_flags carries an extra internal byte swap versus every other
		// field in this struct (construct's BitsInteger(32, swapped=True)
		// in the original parser), so it needs reversing on top of the
		// forward bit read that already matches the rest of the struct.
		BMSFlags:   bits.ReverseBytes32(uint32(bmsFlags)),
		ErrorFlags: uint16(errorFlags),
	}

	for i := 0; i < 8; i++ {
		raw, err := r.ReadUnsigned(7)
		if err != nil {
			return nil, err
		}
		data.CellVoltages[i] = cellVoltage(raw)
	}

	batteryVoltage, err := r.ReadUnsigned(12)
	if err != nil {
		return nil, err
	}
	balancerRaw, err := r.ReadUnsigned(4)
	if err != nil {
		return nil, err
	}
	batteryTemperature, err := r.ReadUnsigned(7)
	if err != nil {
		return nil, err
	}

	data.BatteryVoltage = optionalU(batteryVoltage, 0xFFF, scaled(0.01))
	if balancerRaw != 0xF {
		s := BalancerStatus(balancerRaw)
		data.BalancerStatus = &s
	}
	data.BatteryTemperature = optionalU(batteryTemperature, 0x7F, func(raw uint64) float64 { return float64(raw) - 40 })

	return data, nil
}

// cellVoltage maps a raw 7-bit cell reading to its voltage: 0x00 is a
// shorted cell (−∞), 0x7E an open cell (+∞), 0x7F not fitted (absent), and
// anything else a linear voltage in the cell's measurable range.
func cellVoltage(raw uint64) *float64 {
	switch raw {
	case 0x00:
		v := math.Inf(-1)
		return &v
	case 0x7E:
		v := math.Inf(1)
		return &v
	case 0x7F:
		return nil
	default:
		v := (260 + float64(raw)) / 100
		return &v
	}
}
