package helper

import (
	"crypto/rand"
	"math/big"
)

// Alphanumeric: alfabet untuk salt & session token.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString menghasilkan n karakter acak (CSPRNG) dari alfabet Alphanumeric.
func RandomString(n int) (string, error) {
	max := big.NewInt(int64(len(Alphanumeric)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = Alphanumeric[idx.Int64()]
	}
	return string(b), nil
}
