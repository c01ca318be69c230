package cipher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chadmayfield/victron-ble/envelope"
)

func mustKey(t *testing.T, s string) [KeyLen]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, KeyLen)
	var key [KeyLen]byte
	copy(key[:], b)
	return key
}

func mustFrame(t *testing.T, rawHex string) envelope.Frame {
	t.Helper()
	raw, err := hex.DecodeString(rawHex)
	require.NoError(t, err)
	f, err := envelope.Parse(raw)
	require.NoError(t, err)
	return f
}

func TestDecryptBatteryMonitor(t *testing.T) {
	frame := mustFrame(t, "100289a302b040af925d09a4d89aa0128bdef48c6298a9")
	key := mustKey(t, "aff4d0995b7d1e176c0c33ecb9e70dcd")

	decrypted, err := Decrypt(frame, key)
	require.NoError(t, err)
	require.Equal(t, "ffffe50400000000030000f40140df02", hex.EncodeToString(decrypted))
}

func TestDecryptSolarCharger(t *testing.T) {
	frame := mustFrame(t, "100242a0016207adceb37b605d7e0ee21b24df5c")
	key := mustKey(t, "adeccb947395801a4dd45a2eaa44bf17")

	decrypted, err := Decrypt(frame, key)
	require.NoError(t, err)
	require.Equal(t, "04006c050e000300130000fe449ec46d", hex.EncodeToString(decrypted))
}

func TestDecryptWrongKeyFailsKeyCheck(t *testing.T) {
	frame := mustFrame(t, "100289a302b040af925d09a4d89aa0128bdef48c6298a9")
	key := mustKey(t, "000000000000000000000000000000")

	_, err := Decrypt(frame, key)
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestDecryptMinimumLengthAfterPadding(t *testing.T) {
	frame := mustFrame(t, "100289a302b040af925d09a4d89aa0128bdef48c6298a9")
	key := mustKey(t, "aff4d0995b7d1e176c0c33ecb9e70dcd")

	decrypted, err := Decrypt(frame, key)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(decrypted), 16)
}
