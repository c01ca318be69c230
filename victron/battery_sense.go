package victron

// BatterySenseData is a Smart Battery Sense reading: the same wire format
// as BatteryMonitor, but the product only exposes voltage and temperature.
type BatterySenseData struct {
	Voltage     *float64
	Temperature *float64
}
