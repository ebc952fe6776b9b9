package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/argon2-phc/hashing"
)

// fastParams returns minimal Argon2 parameters for unit tests.
// These are intentionally weak — do NOT use in production.
func fastParams() hashing.Params {
	return hashing.Params{
		Memory:  8 * 2, // 8 × Threads minimum
		Time:    1,
		Threads: 2,
		KeyLen:  16,
		Version: hashing.Version,
	}
}

func newTestHasher(t *testing.T) *hashing.Argon2idHasher {
	t.Helper()
	h, err := hashing.NewArgon2idHasher(fastParams())
	if err != nil {
		t.Fatalf("NewArgon2idHasher: %v", err)
	}
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor validation
// ──────────────────────────────────────────────────────────────────────────────

func TestNewArgon2idHasher_InvalidParams(t *testing.T) {
	p := hashing.Params{Memory: 1, Time: 0, Threads: 0, KeyLen: 1}
	_, err := hashing.NewArgon2idHasher(p)
	if !errors.Is(err, hashing.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestNewArgon2idHasher_AppParams(t *testing.T) {
	h, err := hashing.NewArgon2idHasher(hashing.AppParams())
	if err != nil {
		t.Fatalf("NewArgon2idHasher(AppParams()): %v", err)
	}
	if h.Params() != hashing.AppParams() {
		t.Errorf("Params() = %v, want %v", h.Params(), hashing.AppParams())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make / MakeWithSalt / Check
// ──────────────────────────────────────────────────────────────────────────────

func TestArgon2idHasher_Make_PHCFormat(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("password")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=16,t=1,p=2$") {
		t.Errorf("unexpected prefix: %q", hash)
	}
}

func TestArgon2idHasher_Make_UsesAlphabetSalt(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Make("password")
	if err != nil {
		t.Fatal(err)
	}
	d, err := hashing.Decode(hash)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Salt) != hashing.DefaultSaltLen {
		t.Errorf("salt length = %d, want %d", len(d.Salt), hashing.DefaultSaltLen)
	}
	for _, c := range string(d.Salt) {
		if !strings.ContainsRune(hashing.SaltAlphabet, c) {
			t.Fatalf("salt %q contains %q outside the alphabet", d.Salt, c)
		}
	}
}

func TestArgon2idHasher_Make_UniqueHashes(t *testing.T) {
	h := newTestHasher(t)
	h1, _ := h.Make("same")
	h2, _ := h.Make("same")
	if h1 == h2 {
		t.Error("two Make calls must produce different hashes")
	}
}

func TestArgon2idHasher_MakeWithSalt_Deterministic(t *testing.T) {
	h := newTestHasher(t)
	h1, err := h.MakeWithSalt("same", "saltsalt")
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := h.MakeWithSalt("same", "saltsalt")
	if h1 != h2 {
		t.Errorf("MakeWithSalt not deterministic: %q != %q", h1, h2)
	}
}

func TestArgon2idHasher_Make_EmptyPassword(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.Make("")
	if !errors.Is(err, hashing.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestArgon2idHasher_Check_CorrectPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("secure-pass")
	ok, err := h.Check("secure-pass", hash)
	if err != nil || !ok {
		t.Fatalf("Check correct password: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_WrongPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("correct")
	ok, err := h.Check("incorrect", hash)
	if err != nil || ok {
		t.Fatalf("Check wrong password: ok=%v err=%v", ok, err)
	}
}

func TestArgon2idHasher_Check_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.Check("pw", "not-a-hash")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

func TestArgon2idHasher_Check_WrongVariant(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("pw")
	argon2i := strings.Replace(hash, "$argon2id$", "$argon2i$", 1)
	_, err := h.Check("pw", argon2i)
	if !errors.Is(err, hashing.ErrUnsupportedVariant) {
		t.Errorf("expected ErrUnsupportedVariant, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash / Info
// ──────────────────────────────────────────────────────────────────────────────

func TestArgon2idHasher_NeedsRehash_SameParams(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.Make("pw")
	needs, err := h.NeedsRehash(hash)
	if err != nil || needs {
		t.Errorf("NeedsRehash same params: needs=%v err=%v", needs, err)
	}
}

func TestArgon2idHasher_NeedsRehash_DifferentParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*hashing.Params)
	}{
		{"memory", func(p *hashing.Params) { p.Memory *= 2 }},
		{"time", func(p *hashing.Params) { p.Time++ }},
		{"threads", func(p *hashing.Params) { p.Threads = 1 }},
		{"key_len", func(p *hashing.Params) { p.KeyLen = 32 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fastParams()
			h1, _ := hashing.NewArgon2idHasher(p)
			tt.modify(&p)
			h2, err := hashing.NewArgon2idHasher(p)
			if err != nil {
				t.Fatal(err)
			}

			hash, _ := h1.Make("pw")
			needs, err := h2.NeedsRehash(hash)
			if err != nil || !needs {
				t.Errorf("expected NeedsRehash=true when %s differs: needs=%v err=%v", tt.name, needs, err)
			}
		})
	}
}

func TestArgon2idHasher_NeedsRehash_InvalidHash(t *testing.T) {
	h := newTestHasher(t)
	_, err := h.NeedsRehash("$argon2id$v=19")
	if !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

func TestArgon2idHasher_Info(t *testing.T) {
	h := newTestHasher(t)
	hash, _ := h.MakeWithSalt("pw", "0123456789ab")
	info, err := h.Info(hash)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Variant != hashing.VariantArgon2id {
		t.Errorf("Variant = %q, want %q", info.Variant, hashing.VariantArgon2id)
	}
	if info.Params != fastParams() {
		t.Errorf("Params = %v, want %v", info.Params, fastParams())
	}
	if info.SaltLen != 12 {
		t.Errorf("SaltLen = %d, want 12", info.SaltLen)
	}
}

func TestArgon2idHasher_Variant(t *testing.T) {
	h := newTestHasher(t)
	if h.Variant() != hashing.VariantArgon2id {
		t.Errorf("got %q, want %q", h.Variant(), hashing.VariantArgon2id)
	}
}

func TestArgon2idHasher_SatisfiesHasherInterface(t *testing.T) {
	h := newTestHasher(t)
	var _ hashing.Hasher = h
}

// TestArgon2id_RoundTrip_DifferentParams verifies that a hash produced with
// one parameter set can be checked by a hasher configured with another, which
// is what happens when work factors change between releases.
func TestArgon2id_RoundTrip_DifferentParams(t *testing.T) {
	pA := fastParams()
	pB := fastParams()
	pB.Memory *= 4
	pB.Time = 2

	hA, _ := hashing.NewArgon2idHasher(pA)
	hB, _ := hashing.NewArgon2idHasher(pB)

	hash, _ := hA.Make("hello")

	ok, err := hB.Check("hello", hash)
	if err != nil || !ok {
		t.Fatalf("cross-params Check failed: ok=%v err=%v", ok, err)
	}

	needs, err := hB.NeedsRehash(hash)
	if err != nil || !needs {
		t.Fatalf("NeedsRehash after params change: needs=%v err=%v", needs, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectVariant
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		hash string
		want hashing.Variant
	}{
		{"$argon2id$v=19$m=16,t=1,p=2$c2FsdHNhbHQ$AAAAAAAAAAAAAAAAAAAAAA", hashing.VariantArgon2id},
		{"$argon2i$v=19$m=16,t=1,p=2$c2FsdHNhbHQ$AAAAAAAAAAAAAAAAAAAAAA", hashing.VariantArgon2i},
		{"$argon2d$v=19$m=16,t=1,p=2$c2FsdHNhbHQ$AAAAAAAAAAAAAAAAAAAAAA", hashing.VariantArgon2d},
	}
	for _, tt := range tests {
		got, ok := hashing.DetectVariant(tt.hash)
		if !ok || got != tt.want {
			t.Errorf("DetectVariant(%q...) = (%q, %v), want (%q, true)", tt.hash[:10], got, ok, tt.want)
		}
	}
}

func TestDetectVariant_Unknown(t *testing.T) {
	for _, s := range []string{"some-random-string", "$2b$12$abcdefghijklmnopqrstuv", ""} {
		if _, ok := hashing.DetectVariant(s); ok {
			t.Errorf("DetectVariant(%q): expected ok=false", s)
		}
	}
}
