package victron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMultiRSScenario(t *testing.T) {
	decrypted := mustRaw(t, "090080ff33940000d20200001402")

	data, err := parseMultiRS(decrypted)
	require.NoError(t, err)

	require.Equal(t, ModeInverting, data.DeviceState)
	require.NotNil(t, data.ChargerError)
	require.Equal(t, ErrNoError, *data.ChargerError)
	require.NotNil(t, data.BatteryCurrent)
	require.InDelta(t, -12.8, *data.BatteryCurrent, 0.01)
	require.NotNil(t, data.BatteryVoltage)
	require.InDelta(t, 51.71, *data.BatteryVoltage, 0.01)
	require.NotNil(t, data.ActiveAcIn)
	require.EqualValues(t, 2, *data.ActiveAcIn)
	require.NotNil(t, data.AcInPower)
	require.InDelta(t, 0, *data.AcInPower, 0.01)
	require.InDelta(t, 722, data.AcOutPower, 0.01)
	require.NotNil(t, data.PvPower)
	require.InDelta(t, 0, *data.PvPower, 0.01)
	require.NotNil(t, data.YieldToday)
	require.InDelta(t, 5.32, *data.YieldToday, 0.01)
}

func TestParseMultiRSNotAvailable(t *testing.T) {
	decrypted := mustRaw(t, "0900ff7f3294ff7fff7fffff1402")

	data, err := parseMultiRS(decrypted)
	require.NoError(t, err)

	require.Nil(t, data.BatteryCurrent)
	require.Nil(t, data.AcInPower)
	require.Nil(t, data.PvPower)
}
