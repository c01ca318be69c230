package keyring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chadmayfield/victron-ble/cipher"
)

func TestSetAndLookup(t *testing.T) {
	kr := New()
	var key [cipher.KeyLen]byte
	key[0] = 0xAB

	kr.Set("aa:bb:cc:dd:ee:ff", key)

	got, err := kr.Lookup("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	require.Equal(t, key, got)
}

func TestLookupMissing(t *testing.T) {
	kr := New()
	_, err := kr.Lookup("aa:bb:cc:dd:ee:ff")
	require.ErrorIs(t, err, ErrKeyMissing)
}
