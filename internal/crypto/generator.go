// Package crypto holds the client's randomness-backed helpers.
package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// SecretLength is the length of every generated secret.
const SecretLength = 16

// Character classes drawn from by the generator.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*"
)

var classes = []string{Lowercase, Uppercase, Digits, Symbols}

const alphabet = Lowercase + Uppercase + Digits + Symbols

type secretGenerator struct {
	rand io.Reader
}

// NewSecretGenerator returns a generator reading randomness from r.
// A nil r selects crypto/rand.
func NewSecretGenerator(r io.Reader) SecretGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &secretGenerator{rand: r}
}

// Generate implements [SecretGenerator]. One character is taken from each
// class, the rest uniformly from the combined alphabet, and the result is
// shuffled with Fisher-Yates so the guaranteed characters have no fixed
// positions.
func (g *secretGenerator) Generate() (string, error) {
	secret := make([]byte, 0, SecretLength)

	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		secret = append(secret, c)
	}

	for len(secret) < SecretLength {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		secret = append(secret, c)
	}

	for i := len(secret) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		secret[i], secret[j] = secret[j], secret[i]
	}

	return string(secret), nil
}

func (g *secretGenerator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// intn returns a uniform integer in [0, n).
func (g *secretGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read randomness: %w", err)
	}
	return int(v.Int64()), nil
}
