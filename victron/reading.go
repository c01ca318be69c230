package victron

// Reading is the decoded result of a single Instant Readout advertisement.
// It carries the envelope fields every frame has plus exactly one populated
// device-data pointer, chosen by Kind — a sum type rather than an
// inheritance hierarchy, so callers switch on Kind instead of type-asserting
// down from a common interface.
type Reading struct {
	ModelID     uint16
	ModelName   string
	Kind        DeviceKind
	ReadoutType uint8

	BatteryMonitor      *BatteryMonitorData
	BatterySense        *BatterySenseData
	SolarCharger        *SolarChargerData
	DcDcConverter       *DcDcConverterData
	AcCharger           *AcChargerData
	Inverter            *InverterData
	VEBus               *VEBusData
	MultiRS             *MultiRSData
	OrionXS             *OrionXSData
	LynxSmartBMS        *LynxSmartBMSData
	SmartLithium        *SmartLithiumData
	SmartBatteryProtect *SmartBatteryProtectData
	DcEnergyMeter       *DcEnergyMeterData
}
