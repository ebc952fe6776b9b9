// Package hashing derives and verifies Argon2id password hashes with pinned
// parameters, so that every producer of a hash for the same password and salt
// emits the same string.
//
// # Parameters
//
// [AppParams] returns the set shared with the client application:
//
//   - memory:      7168 KiB
//   - iterations:  5
//   - parallelism: 1
//   - key length:  16 bytes
//   - version:     19 (0x13)
//
// [Params] is a plain value. Construct it once and pass it explicitly.
//
// # Hash format
//
// Hashes are stored in the PHC string format with unpadded standard base64:
//
//	$argon2id$v=19$m=7168,t=5,p=1$<base64-salt>$<base64-key>
//
// All parameters are self-contained in the string, so [Verify] needs nothing
// but the password. [Verify] trusts the embedded parameters. Callers that
// must reject hashes produced with other settings use [VerifyPinned] or
// [Argon2idHasher.NeedsRehash].
//
// # Quick start
//
//	salt, _ := hashing.RandomSalt(hashing.DefaultSaltLen)
//	hash, _ := hashing.Generate([]byte("Aa@12345"), []byte(salt), hashing.AppParams())
//	ok, _ := hashing.Verify([]byte("Aa@12345"), hash) // true
//
// # Errors
//
// Two error kinds are reported: [ErrInvalidInput] (and its refinements
// [ErrInvalidHash], [ErrInvalidOption], [ErrParamsMismatch]) and
// [ErrUnsupportedVariant].
package hashing
