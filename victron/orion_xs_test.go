package victron

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chadmayfield/victron-ble/bitreader"
)

func TestParseOrionXSScenario(t *testing.T) {
	decrypted := mustRaw(t, "0500aa0550006405780000000000")
	r := bitreader.New(decrypted)

	data, err := parseOrionXS(r)
	require.NoError(t, err)

	require.Equal(t, ModeFloat, data.DeviceState)
	require.NotNil(t, data.ChargerError)
	require.Equal(t, ErrNoError, *data.ChargerError)
	require.NotNil(t, data.OutputVoltage)
	require.InDelta(t, 14.5, *data.OutputVoltage, 0.001)
	require.InDelta(t, 8.0, data.OutputCurrent, 0.001)
	require.InDelta(t, 13.8, data.InputVoltage, 0.001)
	require.InDelta(t, 12.0, data.InputCurrent, 0.001)
	require.Equal(t, OffNoReason, data.OffReason)
}
