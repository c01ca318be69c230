package victron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectDeviceTypeOverride(t *testing.T) {
	require.Equal(t, DeviceBatterySense, DetectDeviceType(0xA3A4, 0x02))
	require.Equal(t, DeviceBatterySense, DetectDeviceType(0xA3A5, 0x02))
}

func TestDetectDeviceTypeByReadoutType(t *testing.T) {
	cases := map[uint8]DeviceKind{
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
	for readoutType, want := range cases {
		got := DetectDeviceType(0x1234, readoutType)
		require.Equal(t, want, got, "readout_type 0x%02x", readoutType)
	}
}

func TestDetectDeviceTypeUnknown(t *testing.T) {
	require.Equal(t, DeviceUnknown, DetectDeviceType(0x1234, 0xFE))
}
