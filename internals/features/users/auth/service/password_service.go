package service

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"hash"

	helper "planner_backend/internals/helpers"
)

const (
	SaltLength  = 16
	TokenLength = 32
	HashRounds  = 100
)

// urutan hash dalam satu round
var hashChain = []func() hash.Hash{sha256.New, sha512.New384, sha512.New}

// HashPassword: 100 round × (sha256 → sha384 → sha512),
// tiap langkah hex(H(salt + hasil_sebelumnya)), dimulai dari password.
func HashPassword(salt, password string) string {
	cur := password
	for i := 0; i < HashRounds; i++ {
		for _, newHash := range hashChain {
			h := newHash()
			h.Write([]byte(salt))
			h.Write([]byte(cur))
			cur = hex.EncodeToString(h.Sum(nil))
		}
	}
	return cur
}

// CheckPassword membandingkan digest secara constant-time.
func CheckPassword(digest, salt, password string) bool {
	got := HashPassword(salt, password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}

func NewSalt() (string, error) {
	return helper.RandomString(SaltLength)
}

func NewSessionToken() (string, error) {
	return helper.RandomString(TokenLength)
}
