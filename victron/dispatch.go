package victron

// DeviceKind identifies which per-device parser a frame's readout_type byte
// (or, for two model ids, an override table) selects.
type DeviceKind uint8

const (
	DeviceUnknown DeviceKind = iota
	DeviceSolarCharger
	DeviceBatteryMonitor
	DeviceInverter
	DeviceDcDcConverter
	DeviceSmartLithium
	DeviceAcCharger
	DeviceSmartBatteryProtect
	DeviceLynxSmartBMS
	DeviceMultiRS
	DeviceVEBus
	DeviceDcEnergyMeter
	DeviceOrionXS
	DeviceBatterySense
)

func (k DeviceKind) String() string {
	switch k {
	case DeviceSolarCharger:
		return "SolarCharger"
	case DeviceBatteryMonitor:
		return "BatteryMonitor"
	case DeviceInverter:
		return "Inverter"
	case DeviceDcDcConverter:
		return "DcDcConverter"
	case DeviceSmartLithium:
		return "SmartLithium"
	case DeviceAcCharger:
		return "AcCharger"
	case DeviceSmartBatteryProtect:
		return "SmartBatteryProtect"
	case DeviceLynxSmartBMS:
		return "LynxSmartBMS"
	case DeviceMultiRS:
		return "MultiRS"
	case DeviceVEBus:
		return "VEBus"
	case DeviceDcEnergyMeter:
		return "DcEnergyMeter"
	case DeviceOrionXS:
		return "OrionXS"
	case DeviceBatterySense:
		return "BatterySense"
	default:
		return "Unknown"
	}
}

// modelOverride lists the model ids whose device type cannot be derived
// from the readout_type byte alone: the Smart Battery Sense announces the
// same readout_type as a plain BatteryMonitor but exposes only a subset of
// its fields.
var modelOverride = map[uint16]DeviceKind{
	0xA3A4: DeviceBatterySense,
	0xA3A5: DeviceBatterySense,
}

// readoutTypeDispatch maps the frame header's readout_type byte to the
// device kind that parses its decrypted body.
var readoutTypeDispatch = map[uint8]DeviceKind{
	0x01: DeviceSolarCharger,
	0x02: DeviceBatteryMonitor,
	0x03: DeviceInverter,
	0x04: DeviceDcDcConverter,
	0x05: DeviceSmartLithium,
	0x08: DeviceAcCharger,
	0x09: DeviceSmartBatteryProtect,
	0x0A: DeviceLynxSmartBMS,
	0x0B: DeviceMultiRS,
	0x0C: DeviceVEBus,
	0x0D: DeviceDcEnergyMeter,
	0x0F: DeviceOrionXS,
}

// DetectDeviceType chooses the device kind for a parsed frame: the model-id
// override table takes priority over the readout_type table, since some
// products share a readout_type with a device they aren't.
func DetectDeviceType(modelID uint16, readoutType uint8) DeviceKind {
	if kind, ok := modelOverride[modelID]; ok {
		return kind
	}
	if kind, ok := readoutTypeDispatch[readoutType]; ok {
		return kind
	}
	return DeviceUnknown
}
