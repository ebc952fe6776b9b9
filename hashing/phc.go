package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// MaxDecodedMemory bounds the memory cost (KiB) accepted from an encoded
// hash, so a crafted string cannot make Verify allocate without limit.
// 2 GiB is the largest cost RFC 9106 recommends.
const MaxDecodedMemory uint32 = 2 * 1024 * 1024

// b64 is the unpadded standard alphabet used by argon2-cffi and libargon2.
// Strict mode rejects non-zero trailing bits so every hash has exactly one
// accepted spelling.
var b64 = base64.RawStdEncoding.Strict()

// Decoded is the parsed form of a PHC hash string.
type Decoded struct {
	Variant Variant
	Params  Params
	Salt    []byte
	Key     []byte
}

// Encode serialises d in PHC string format:
//
//	$argon2id$v=19$m=7168,t=5,p=1$<salt_base64>$<key_base64>
//
// Params.KeyLen is not written; it is implied by the length of Key.
func Encode(d Decoded) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		d.Variant,
		d.Params.Version,
		d.Params.Memory,
		d.Params.Time,
		d.Params.Threads,
		b64.EncodeToString(d.Salt),
		b64.EncodeToString(d.Key),
	)
}

// Decode parses an argon2id PHC hash string.
//
// Errors wrap [ErrUnsupportedVariant] when the identifier is anything but
// argon2id, and [ErrInvalidHash] for every other structural problem.
func Decode(encoded string) (*Decoded, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidHash)
	}

	// The leading "$" produces an empty first element.
	parts := strings.Split(encoded, "$")
	if len(parts) < 2 || parts[0] != "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: missing algorithm identifier", ErrInvalidHash)
	}
	if parts[1] != string(VariantArgon2id) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, parts[1])
	}
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 5-segment PHC string, got %d segments",
			ErrInvalidHash, len(parts)-1)
	}

	// parts[2]: "v=<version>"
	version, err := parseField(parts[2], "v", 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	// parts[3]: "m=<memory>,t=<time>,p=<threads>", in that order.
	kvs := strings.Split(parts[3], ",")
	if len(kvs) != 3 {
		return nil, fmt.Errorf("%w: parameter segment %q must be m=…,t=…,p=…", ErrInvalidHash, parts[3])
	}
	memory, err := parseField(kvs[0], "m", 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	time, err := parseField(kvs[1], "t", 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	threads, err := parseField(kvs[2], "p", 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}
	if len(salt) < MinSaltLen {
		return nil, fmt.Errorf("%w: salt is %d bytes, need ≥ %d", ErrInvalidHash, len(salt), MinSaltLen)
	}

	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid key base64: %v", ErrInvalidHash, err)
	}

	p := Params{
		Memory:  uint32(memory),
		Time:    uint32(time),
		Threads: uint8(threads),
		KeyLen:  uint32(len(key)),
		Version: uint32(version),
	}
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if p.Memory > MaxDecodedMemory {
		return nil, fmt.Errorf("%w: memory %d KiB exceeds limit of %d KiB",
			ErrInvalidHash, p.Memory, MaxDecodedMemory)
	}

	return &Decoded{
		Variant: VariantArgon2id,
		Params:  p,
		Salt:    salt,
		Key:     key,
	}, nil
}

// parseField parses "key=value" and returns value as an unsigned integer that
// fits in bits.
func parseField(s, key string, bits int) (uint64, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	v, err := strconv.ParseUint(s[len(prefix):], 10, bits)
	if err != nil {
		return 0, fmt.Errorf("non-numeric or out-of-range value in %q", s)
	}
	return v, nil
}
