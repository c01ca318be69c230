package victron

import (
	"errors"
	"fmt"

	"github.com/chadmayfield/victron-ble/bitreader"
	"github.com/chadmayfield/victron-ble/cipher"
	"github.com/chadmayfield/victron-ble/envelope"
)

// ErrMalformedFrame means the raw bytes were too short or carried the wrong
// instant-readout tag. Non-retryable; callers should drop the advertisement.
var ErrMalformedFrame = envelope.ErrMalformedFrame

// ErrUnknownDevice means the model id / readout type pair wasn't recognized.
// Not fatal; log and drop.
var ErrUnknownDevice = errors.New("victron: unknown device type")

// ErrKeyMissing means no device key is configured for this advertisement's
// source. Callers typically drop the advertisement silently and log once
// per MAC at info level; this package never looks a key up itself, so it
// only documents the contract for keyring.Keyring callers.
var ErrKeyMissing = errors.New("victron: no device key configured")

// ErrKeyMismatch means the configured key's first byte didn't match the
// frame's key-check byte — decryption was never attempted.
var ErrKeyMismatch = cipher.ErrKeyMismatch

// ErrMalformedPayload means the bit reader ran out of buffer before a
// required field. Enum fields are not validated: a value outside an enum's
// declared constants is carried through as-is rather than rejected.
var ErrMalformedPayload = bitreader.ErrOutOfRange

func malformedPayload(err error) error {
	return fmt.Errorf("victron: malformed payload: %w", err)
}
