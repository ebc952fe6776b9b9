package hashing

// Argon2idHasher hashes passwords with Argon2id under one fixed [Params]
// value.
//
// Output format: PHC string ($argon2id$v=19$m=…,t=…,p=…$<salt>$<key>),
// byte-compatible with argon2-cffi and libargon2.
//
// # Thread safety
//
// Argon2idHasher is immutable after construction and safe for concurrent use.
// Each concurrent Make or Check allocates Params.Memory KiB.
type Argon2idHasher struct {
	params  Params
	saltLen int
}

// NewArgon2idHasher constructs an Argon2idHasher with the given parameters.
// Use [AppParams] for the application's pinned set.
func NewArgon2idHasher(p Params) (*Argon2idHasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Argon2idHasher{params: p, saltLen: DefaultSaltLen}, nil
}

// Variant returns [VariantArgon2id].
func (h *Argon2idHasher) Variant() Variant { return VariantArgon2id }

// Params returns the parameter set new hashes are produced with.
func (h *Argon2idHasher) Params() Params { return h.params }

// Make hashes password with a fresh [RandomSalt] of [DefaultSaltLen] characters.
func (h *Argon2idHasher) Make(password string) (string, error) {
	salt, err := RandomSalt(h.saltLen)
	if err != nil {
		return "", err
	}
	return h.MakeWithSalt(password, salt)
}

// MakeWithSalt hashes password with the UTF-8 bytes of salt.
func (h *Argon2idHasher) MakeWithSalt(password, salt string) (string, error) {
	return Generate([]byte(password), []byte(salt), h.params)
}

// Check verifies that password matches the PHC hash. The parameters are
// read from the hash itself, so hashes made with older settings still verify.
func (h *Argon2idHasher) Check(password, hash string) (bool, error) {
	return Verify([]byte(password), hash)
}

// NeedsRehash returns true if any parameter stored in hash differs from the
// hasher's configuration.
func (h *Argon2idHasher) NeedsRehash(hash string) (bool, error) {
	d, err := Decode(hash)
	if err != nil {
		return false, err
	}
	return d.Params != h.params, nil
}

// Info parses the PHC string and returns the encoded parameters.
func (h *Argon2idHasher) Info(hash string) (HashInfo, error) {
	d, err := Decode(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Variant: d.Variant,
		Params:  d.Params,
		SaltLen: len(d.Salt),
	}, nil
}
