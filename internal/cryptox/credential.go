// Package cryptox derives and checks salted credential digests.
//
// The stored form of a password is a (digest, salt) pair of strings. The
// digest function is pluggable: SHA256Hasher reproduces the historical
// hex(sha256(password + salt)) format, Argon2Hasher swaps in a memory-hard
// KDF. Swapping changes verify cost only; callers see the same contract.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// SaltAlphabet is the 36-symbol alphabet salts are drawn from.
const SaltAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Hasher names for configuration.
const (
	HasherSHA256   = "sha256"
	HasherArgon2ID = "argon2id"
)

// Hasher turns a password and salt into an opaque digest string.
// Implementations must be deterministic.
type Hasher interface {
	Hash(password, salt string) string
}

// SHA256Hasher hashes password+salt with a single SHA-256 round.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Argon2Hasher derives the digest with Argon2id.
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Hasher uses the parameters suggested by the x/crypto/argon2
// docs for IDKey: one pass over 64 MiB with four lanes.
func DefaultArgon2Hasher() Argon2Hasher {
	return Argon2Hasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}
}

func (h Argon2Hasher) Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), h.Time, h.Memory, h.Threads, h.KeyLen)
	return hex.EncodeToString(key)
}

// HasherByName resolves a configured hasher name.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "", HasherSHA256:
		return SHA256Hasher{}, nil
	case HasherArgon2ID:
		return DefaultArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// Codec generates salts and computes/verifies credential digests.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	hasher Hasher
}

// NewCodec returns a Codec using h, or SHA256Hasher when h is nil.
func NewCodec(h Hasher) *Codec {
	if h == nil {
		h = SHA256Hasher{}
	}
	return &Codec{hasher: h}
}

// GenerateSalt returns length characters drawn uniformly from SaltAlphabet.
// Randomness comes from crypto/rand; bytes >= 252 are rejected so every
// symbol is equally likely.
func (c *Codec) GenerateSalt(length int) string {
	const limit = 256 - 256%len(SaltAlphabet)

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)
	for len(out) < length {
		// crypto/rand.Read never returns an error on supported platforms.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, SaltAlphabet[int(b)%len(SaltAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}

// Hash returns the digest of password under salt.
func (c *Codec) Hash(password, salt string) string {
	return c.hasher.Hash(password, salt)
}

// Verify recomputes the digest and compares it in constant time.
func (c *Codec) Verify(password, salt, expected string) bool {
	got := c.Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
