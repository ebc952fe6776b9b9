package hashing

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SaltAlphabet is the 62-symbol alphabet generated salts are drawn from.
// The ordering matches the client application's generator.
const SaltAlphabet = "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz1234567890"

// saltRejectAbove is the largest multiple of len(SaltAlphabet) that fits in a
// byte (4×62 = 248). Bytes at or above it are discarded so that byte%62 is
// uniform.
const saltRejectAbove = 256 - 256%len(SaltAlphabet)

// RandomSalt returns length characters drawn uniformly from [SaltAlphabet]
// using crypto/rand. It fails with [ErrInvalidInput] when length is below
// [MinSaltLen].
func RandomSalt(length int) (string, error) {
	return randomSalt(rand.Reader, length)
}

func randomSalt(r io.Reader, length int) (string, error) {
	if length < MinSaltLen {
		return "", fmt.Errorf("%w: salt length must be ≥ %d, got %d", ErrInvalidInput, MinSaltLen, length)
	}

	out := make([]byte, 0, length)
	// Over-read to make one round trip usually enough; ~3% of bytes are rejected.
	buf := make([]byte, length+length/8+8)
	for len(out) < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("hashing: failed to generate salt: %w", err)
		}
		for _, b := range buf {
			if int(b) >= saltRejectAbove {
				continue
			}
			out = append(out, SaltAlphabet[int(b)%len(SaltAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
