package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerDeduplicatesByMacAndIV(t *testing.T) {
	tr := newTracker()

	require.True(t, tr.isNew("AA:BB:CC:DD:EE:FF", 1))
	require.False(t, tr.isNew("AA:BB:CC:DD:EE:FF", 1))
	require.True(t, tr.isNew("AA:BB:CC:DD:EE:FF", 2))
	require.True(t, tr.isNew("11:22:33:44:55:66", 1))
}

func TestLoadKeyring(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.keys")
	contents := "# comment line\n\naa:bb:cc:dd:ee:ff=aff4d0995b7d1e176c0c33ecb9e70dcd\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	kr, err := loadKeyring(path)
	require.NoError(t, err)

	key, err := kr.Lookup("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	require.Equal(t, byte(0xaf), key[0])
}

func TestLoadKeyringRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.keys")
	require.NoError(t, os.WriteFile(path, []byte("not-a-valid-line\n"), 0o600))

	_, err := loadKeyring(path)
	require.Error(t, err)
}

func TestLoadKeyringRejectsShortKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devices.keys")
	require.NoError(t, os.WriteFile(path, []byte("aa:bb:cc:dd:ee:ff=aabbcc\n"), 0o600))

	_, err := loadKeyring(path)
	require.Error(t, err)
}
