// Package id provides short, URL-safe identifier generation.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// UppercaseAlphabet restricts generation to digits and uppercase letters,
	// used for codes that must survive case-insensitive entry.
	UppercaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixInvoice     = "inv"
	PrefixSponsoredTx = "stx"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	return generateFrom(alphabet, length)
}

// GenerateUppercase creates a random ID from digits and uppercase letters only.
func GenerateUppercase(length int) (string, error) {
	return generateFrom(UppercaseAlphabet, length)
}

func generateFrom(chars string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	charsLen := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
// This follows the Stripe-style ID pattern for human-readable identifiers.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// HasPrefix reports whether the ID carries the given type prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}

// ValidatePrefix checks that the ID carries the expected prefix and a non-empty body.
func ValidatePrefix(id, prefix string) error {
	if !HasPrefix(id, prefix) {
		return fmt.Errorf("id %q does not have prefix %q", id, prefix)
	}
	if len(id) <= len(prefix)+1 {
		return fmt.Errorf("id %q has empty body", id)
	}
	return nil
}
