package victron

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chadmayfield/victron-ble/bitreader"
	"github.com/chadmayfield/victron-ble/cipher"
)

func mustParseKey(t *testing.T, s string) [cipher.KeyLen]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, cipher.KeyLen)
	var key [cipher.KeyLen]byte
	copy(key[:], b)
	return key
}

func mustRaw(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestParseBatteryMonitorScenario(t *testing.T) {
	raw := mustRaw(t, "100289a302b040af925d09a4d89aa0128bdef48c6298a9")
	key := mustParseKey(t, "aff4d0995b7d1e176c0c33ecb9e70dcd")

	reading, err := Parse(raw, key)
	require.NoError(t, err)
	require.Equal(t, DeviceBatteryMonitor, reading.Kind)
	require.Equal(t, "SmartShunt 500A/50mV", reading.ModelName)

	bm := reading.BatteryMonitor
	require.NotNil(t, bm)
	require.Nil(t, bm.RemainingMinutes)
	require.NotNil(t, bm.Voltage)
	require.InDelta(t, 12.53, *bm.Voltage, 0.001)
	require.Equal(t, AlarmNone, bm.Alarm)
	require.Equal(t, AuxDisabled, bm.AuxMode)
	require.NotNil(t, bm.Current)
	require.InDelta(t, 0, *bm.Current, 0.0001)
	require.NotNil(t, bm.ConsumedAh)
	require.InDelta(t, -50.0, *bm.ConsumedAh, 0.001)
	require.NotNil(t, bm.SOC)
	require.InDelta(t, 50.0, *bm.SOC, 0.001)
}

func TestParseBatteryMonitorTemperatureAux(t *testing.T) {
	decrypted := mustRaw(t, "ffffe6040000ffff020000000080fede")
	r := bitreader.New(decrypted)

	data, err := parseBatteryMonitor(r)
	require.NoError(t, err)
	require.Equal(t, AuxTemperature, data.AuxMode)
	require.NotNil(t, data.Temperature)
	require.InDelta(t, 382.2, *data.Temperature, 0.01)
}

func TestParseSolarChargerScenario(t *testing.T) {
	raw := mustRaw(t, "100242a0016207adceb37b605d7e0ee21b24df5c")
	key := mustParseKey(t, "adeccb947395801a4dd45a2eaa44bf17")

	reading, err := Parse(raw, key)
	require.NoError(t, err)
	require.Equal(t, DeviceSolarCharger, reading.Kind)
	require.Equal(t, "BlueSolar MPPT 75|15", reading.ModelName)

	sc := reading.SolarCharger
	require.NotNil(t, sc)
	require.Equal(t, ModeAbsorption, sc.ChargeState)
	require.InDelta(t, 13.88, sc.BatteryVoltage, 0.001)
	require.InDelta(t, 1.4, sc.BatteryChargingCurrent, 0.001)
	require.NotNil(t, sc.YieldToday)
	require.InDelta(t, 30, *sc.YieldToday, 0.001)
	require.NotNil(t, sc.SolarPower)
	require.InDelta(t, 19, *sc.SolarPower, 0.001)
	require.NotNil(t, sc.ExternalDeviceLoad)
	require.InDelta(t, 0.0, *sc.ExternalDeviceLoad, 0.001)
}

func TestParseDcDcConverterScenario(t *testing.T) {
	raw := mustRaw(t, "1000c0a304121d64ca8d442b90bbdf6a8cba")
	key := mustParseKey(t, "64ba49f1a8562e45197a8e1fe50d7658")

	reading, err := Parse(raw, key)
	require.NoError(t, err)
	require.Equal(t, DeviceDcDcConverter, reading.Kind)

	dc := reading.DcDcConverter
	require.NotNil(t, dc)
	require.NotNil(t, dc.DeviceState)
	require.Equal(t, ModeOff, *dc.DeviceState)
	require.NotNil(t, dc.InputVoltage)
	require.InDelta(t, 13.15, *dc.InputVoltage, 0.001)
	require.Nil(t, dc.OutputVoltage)
	require.True(t, dc.OffReason.Has(OffEngineShutdown))
}

func TestParseDcDcConverterDeviceStateAbsent(t *testing.T) {
	decrypted := mustRaw(t, "ff00ffff7fff00000000")
	r := bitreader.New(decrypted)

	data, err := parseDcDcConverter(r)
	require.NoError(t, err)
	require.Nil(t, data.DeviceState)
}

func TestParseVEBusScenario(t *testing.T) {
	raw := mustRaw(t, "100380270c1252dad26f0b8eb39162074d140df410")
	key := mustParseKey(t, "da3f5fa2860cb1cf86ba7a6d1d16b9dd")

	reading, err := Parse(raw, key)
	require.NoError(t, err)
	require.Equal(t, DeviceVEBus, reading.Kind)

	vb := reading.VEBus
	require.NotNil(t, vb)
	require.Equal(t, ModeFloat, vb.DeviceState)
	require.NotNil(t, vb.BatteryVoltage)
	require.InDelta(t, 14.45, *vb.BatteryVoltage, 0.01)
	require.NotNil(t, vb.BatteryCurrent)
	require.InDelta(t, 23.2, *vb.BatteryCurrent, 0.01)
	require.NotNil(t, vb.AcInState)
	require.Equal(t, ACIn1, *vb.AcInState)
	require.NotNil(t, vb.AcInPower)
	require.InDelta(t, 1459, *vb.AcInPower, 1)
	require.InDelta(t, 1046, vb.AcOutPower, 1)
	require.NotNil(t, vb.BatteryTemperature)
	require.InDelta(t, 32, *vb.BatteryTemperature, 0.01)
	require.Nil(t, vb.SOC)
}

func TestParseWrongKeyFailsKeyMismatch(t *testing.T) {
	raw := mustRaw(t, "100289a302b040af925d09a4d89aa0128bdef48c6298a9")
	zero := mustParseKey(t, strings.Repeat("00", cipher.KeyLen))

	_, err := Parse(raw, zero)
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestParseUnknownDevice(t *testing.T) {
	kind := DetectDeviceType(0x1234, 0xFE)
	require.Equal(t, DeviceUnknown, kind)
}
