package hashing

import "strings"

// Variant identifies an Argon2 algorithm variant as it appears in the first
// segment of a PHC string.
type Variant string

const (
	// VariantArgon2id is the only variant this package derives and verifies.
	VariantArgon2id Variant = "argon2id"
	// VariantArgon2i is recognised by [DetectVariant] but rejected by Verify.
	VariantArgon2i Variant = "argon2i"
	// VariantArgon2d is recognised by [DetectVariant] but rejected by Verify.
	VariantArgon2d Variant = "argon2d"
)

// Hasher is the interface satisfied by [Argon2idHasher]. The command-line
// tool depends on it rather than on the concrete type.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes password with a freshly generated salt.
	Make(password string) (string, error)

	// MakeWithSalt hashes password with the given salt. The result is
	// deterministic for identical inputs.
	MakeWithSalt(password, salt string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the input is invalid.
	//
	// Comparison is performed in constant time.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether hash was produced with parameters that
	// differ from the hasher's.
	NeedsRehash(hash string) (bool, error)

	// Info extracts the variant and parameters from hash without verifying it.
	Info(hash string) (HashInfo, error)

	// Variant returns the variant implemented by this hasher.
	Variant() Variant
}

// HashInfo carries metadata parsed from an encoded hash string. It never
// holds the salt or the derived key.
type HashInfo struct {
	Variant Variant
	Params  Params
	SaltLen int
}

// DetectVariant inspects a hash string and returns the Argon2 [Variant] named
// in its first segment. It does not validate the rest of the string.
//
// The second return value is false when the prefix is not an Argon2 one.
func DetectVariant(hash string) (Variant, bool) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		return VariantArgon2id, true
	case strings.HasPrefix(hash, "$argon2i$"):
		return VariantArgon2i, true
	case strings.HasPrefix(hash, "$argon2d$"):
		return VariantArgon2d, true
	default:
		return "", false
	}
}
