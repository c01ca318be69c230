// Package cipher decrypts the encrypted body of a Victron Instant Readout
// frame with AES-128 in CTR mode, using the frame's 16-bit IV as the
// initial counter.
package cipher

import (
	stdaes "crypto/aes"
	"fmt"

	"github.com/chadmayfield/victron-ble/envelope"
)

// ErrKeyMismatch is returned when the device key's first byte does not
// match the frame's key-check byte; decryption is never attempted.
var ErrKeyMismatch = fmt.Errorf("cipher: key-check byte mismatch")

// KeyLen is the length in bytes of a Victron device key.
const KeyLen = 16

// blockSize is the AES block size; the ciphertext is zero-padded to a
// multiple of it before decryption.
const blockSize = stdaes.BlockSize

// Decrypt verifies the key-check byte, strips it, right-pads the remaining
// ciphertext with zero bytes to a multiple of the AES block size, and
// decrypts it with AES-128-CTR. The initial counter is the frame's IV,
// placed in the low bytes of a 128-bit little-endian counter block.
//
// Go's standard library crypto/cipher.NewCTR always increments its counter
// block as a big-endian integer (carrying from the last byte backward),
// which is the opposite of the little-endian convention Victron's published
// Extra Manufacturer Data spec uses. So this decrypts block-by-block with a
// manually incremented little-endian counter rather than going through
// cipher.Stream.
func Decrypt(frame envelope.Frame, key [KeyLen]byte) ([]byte, error) {
	if len(frame.EncryptedBody) == 0 {
		return nil, fmt.Errorf("cipher: empty encrypted body")
	}

	if frame.EncryptedBody[0] != key[0] {
		return nil, ErrKeyMismatch
	}
	ciphertext := frame.EncryptedBody[1:]

	padded := make([]byte, roundUp(len(ciphertext), blockSize))
	copy(padded, ciphertext)

	block, err := stdaes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}

	counter := initialCounter(frame.IV)
	decrypted := make([]byte, len(padded))
	var keystream [blockSize]byte
	for off := 0; off < len(padded); off += blockSize {
		block.Encrypt(keystream[:], counter[:])
		for i := 0; i < blockSize; i++ {
			decrypted[off+i] = padded[off+i] ^ keystream[i]
		}
		incrementLittleEndian(&counter)
	}
	return decrypted, nil
}

// initialCounter places iv in the low two bytes of a 16-byte little-endian
// counter block, matching Victron's published Extra Manufacturer Data
// convention. Historical code treated this as an OFB keystream with the IV
// used as-is; that decrypts identically for the first block but diverges
// afterward. CTR with a little-endian counter is the correct construction.
func initialCounter(iv uint16) [blockSize]byte {
	var counter [blockSize]byte
	counter[0] = byte(iv)
	counter[1] = byte(iv >> 8)
	return counter
}

// incrementLittleEndian adds one to counter, treating it as a 128-bit
// little-endian integer: the lowest-index byte is the least significant,
// and carries propagate toward higher indices.
func incrementLittleEndian(counter *[blockSize]byte) {
	for i := 0; i < blockSize; i++ {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}

func roundUp(n, multiple int) int {
	if n%multiple == 0 {
		if n == 0 {
			return multiple
		}
		return n
	}
	return n + (multiple - n%multiple)
}
