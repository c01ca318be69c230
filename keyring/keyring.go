// Package keyring is a caller-owned lookup of per-device AES keys, keyed
// by BLE MAC address. It is intentionally not a singleton: each scanner or
// test owns its own Keyring value and passes it explicitly, so device
// secrets never end up behind package-level mutable state.
package keyring

import (
	"errors"
	"strings"

	"github.com/chadmayfield/victron-ble/cipher"
)

// ErrKeyMissing is returned by Lookup when mac has no configured key.
var ErrKeyMissing = errors.New("keyring: no device key configured")

// Keyring maps a normalized MAC address to its 16-byte device key.
type Keyring struct {
	keys map[string][cipher.KeyLen]byte
}

// New returns an empty Keyring ready for Set calls.
func New() *Keyring {
	return &Keyring{keys: make(map[string][cipher.KeyLen]byte)}
}

// Set records key for mac, overwriting any previous entry. mac is matched
// case-insensitively.
func (k *Keyring) Set(mac string, key [cipher.KeyLen]byte) {
	k.keys[normalize(mac)] = key
}

// Lookup returns the key configured for mac, or ErrKeyMissing if none is
// set.
func (k *Keyring) Lookup(mac string) ([cipher.KeyLen]byte, error) {
	key, ok := k.keys[normalize(mac)]
	if !ok {
		return [cipher.KeyLen]byte{}, ErrKeyMissing
	}
	return key, nil
}

func normalize(mac string) string {
	return strings.ToUpper(strings.TrimSpace(mac))
}
