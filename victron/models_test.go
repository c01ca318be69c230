package victron

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModelNameKnown(t *testing.T) {
	require.Equal(t, "SmartShunt 500A/50mV", ModelName(0xA389))
	require.Equal(t, "Smart Battery Sense", ModelName(0xA3A4))
	require.Equal(t, "BlueSolar MPPT 75|15", ModelName(0xA042))
}

func TestModelNameUnknown(t *testing.T) {
	require.Equal(t, "<Unknown device: 0x9999>", ModelName(0x9999))
}
