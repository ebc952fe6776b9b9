package hashing

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// AppMemory is the memory cost in KiB pinned by the client application.
	AppMemory uint32 = 7168

	// AppTime is the pinned number of passes over memory.
	AppTime uint32 = 5

	// AppThreads is the pinned degree of parallelism.
	AppThreads uint8 = 1

	// AppKeyLen is the pinned derived key length in bytes.
	AppKeyLen uint32 = 16

	// Version is the Argon2 version encoded in every hash (0x13 = 19).
	// It is the only version golang.org/x/crypto/argon2 computes.
	Version uint32 = argon2.Version

	// DefaultSaltLen is the number of characters in a generated salt.
	DefaultSaltLen = 16

	// MinSaltLen is the shortest salt accepted, in bytes.
	MinSaltLen = 8

	minKeyLen = 4
)

// Params is the Argon2id cost parameter set. It is a plain value: build it
// once at startup and pass it to [Generate] or [NewArgon2idHasher].
//
// Every field is written into the PHC string, so a hash can be verified
// without knowing the Params it was produced with.
type Params struct {
	// Memory is the memory cost in KiB. Minimum: 8 * Threads.
	Memory uint32

	// Time is the number of iterations. Minimum: 1.
	Time uint32

	// Threads is the degree of parallelism. Minimum: 1.
	Threads uint8

	// KeyLen is the length of the derived key in bytes. Minimum: 4.
	KeyLen uint32

	// Version must be [Version].
	Version uint32
}

// AppParams returns the parameter set shared with the client application:
// m=7168, t=5, p=1, 16-byte key, v=19.
func AppParams() Params {
	return Params{
		Memory:  AppMemory,
		Time:    AppTime,
		Threads: AppThreads,
		KeyLen:  AppKeyLen,
		Version: Version,
	}
}

// Validate reports whether p is a parameter set Argon2 can run with.
// The returned error wraps [ErrInvalidOption].
func (p Params) Validate() error {
	if err := p.check(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return nil
}

func (p Params) check() error {
	if p.Time < 1 {
		return fmt.Errorf("time must be ≥ 1, got %d", p.Time)
	}
	if p.Threads < 1 {
		return fmt.Errorf("threads must be ≥ 1, got %d", p.Threads)
	}
	if p.Memory < 8*uint32(p.Threads) {
		return fmt.Errorf("memory (%d KiB) must be ≥ 8×threads (%d KiB)", p.Memory, 8*uint32(p.Threads))
	}
	if p.KeyLen < minKeyLen {
		return fmt.Errorf("key_len must be ≥ %d, got %d", minKeyLen, p.KeyLen)
	}
	if p.Version != Version {
		return fmt.Errorf("version must be %d, got %d", Version, p.Version)
	}
	return nil
}

// String renders p in the PHC parameter notation, e.g. "v=19,m=7168,t=5,p=1,len=16".
func (p Params) String() string {
	return fmt.Sprintf("v=%d,m=%d,t=%d,p=%d,len=%d", p.Version, p.Memory, p.Time, p.Threads, p.KeyLen)
}
