package hashing

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Generate derives an Argon2id key from password and salt using exactly p and
// returns the PHC encoding of the result.
//
// Generate is deterministic: identical inputs always produce byte-identical
// output. It fails with [ErrInvalidInput] when password is empty or salt is
// shorter than [MinSaltLen] bytes, and with [ErrInvalidOption] when p is
// invalid.
func Generate(password, salt []byte, p Params) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}
	if len(salt) < MinSaltLen {
		return "", fmt.Errorf("%w: salt must be ≥ %d bytes, got %d", ErrInvalidInput, MinSaltLen, len(salt))
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	key := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return Encode(Decoded{
		Variant: VariantArgon2id,
		Params:  p,
		Salt:    salt,
		Key:     key,
	}), nil
}

// Verify reports whether password matches encoded. The derivation runs with
// the parameters embedded in encoded, whatever they are; use [VerifyPinned]
// to require a specific parameter set.
//
// Returns (false, nil) on mismatch. Errors wrap [ErrInvalidInput] for an
// empty password or malformed hash, and [ErrUnsupportedVariant] for a hash
// that is not argon2id.
func Verify(password []byte, encoded string) (bool, error) {
	if len(password) == 0 {
		return false, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}
	d, err := Decode(encoded)
	if err != nil {
		return false, err
	}
	return d.matches(password), nil
}

// VerifyPinned is [Verify] with parameter pinning: a hash whose embedded
// parameters differ from p fails with [ErrParamsMismatch] before any key is
// derived.
func VerifyPinned(password []byte, encoded string, p Params) (bool, error) {
	if len(password) == 0 {
		return false, fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}
	d, err := Decode(encoded)
	if err != nil {
		return false, err
	}
	if d.Params != p {
		return false, fmt.Errorf("%w: hash has %s, want %s", ErrParamsMismatch, d.Params, p)
	}
	return d.matches(password), nil
}

// matches recomputes the key over password and compares it with d.Key in
// constant time.
func (d *Decoded) matches(password []byte) bool {
	p := d.Params
	computed := argon2.IDKey(password, d.Salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(computed, d.Key) == 1
}
