package hashing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons. [ErrInvalidHash], [ErrInvalidOption] and
// [ErrParamsMismatch] are refinements of [ErrInvalidInput], so a caller that
// only distinguishes the two error kinds can test for that one:
//
//	ok, err := hashing.Verify(password, encoded)
//	switch {
//	case errors.Is(err, hashing.ErrUnsupportedVariant):
//	    // hash was produced by argon2i, argon2d or something else
//	case errors.Is(err, hashing.ErrInvalidInput):
//	    // empty password, short salt or malformed hash
//	}
var (
	// ErrInvalidInput is returned when a password is empty, a salt is shorter
	// than [MinSaltLen], or a requested salt length is below [MinSaltLen].
	ErrInvalidInput = errors.New("hashing: invalid input")

	// ErrUnsupportedVariant is returned when an encoded hash names an
	// algorithm other than argon2id.
	ErrUnsupportedVariant = errors.New("hashing: unsupported hash variant")

	// ErrInvalidHash is returned when a hash string cannot be parsed because
	// it has missing segments, non-numeric parameters or invalid base64.
	ErrInvalidHash = fmt.Errorf("%w: malformed hash string", ErrInvalidInput)

	// ErrInvalidOption is returned when a [Params] value falls outside the
	// range Argon2 accepts (e.g. memory below 8 KiB per thread).
	ErrInvalidOption = fmt.Errorf("%w: invalid argon2 parameter", ErrInvalidInput)

	// ErrParamsMismatch is returned by [VerifyPinned] when the parameters
	// embedded in a hash differ from the pinned ones.
	ErrParamsMismatch = fmt.Errorf("%w: hash parameters do not match", ErrInvalidInput)
)
