// Package normalize provides canonical forms for identity fields.
// Wallet addresses and client emails arrive from multiple ingress points
// (API payloads, on-chain callbacks, stored records) with inconsistent
// casing; every lookup key must pass through here before comparison or
// persistence.
package normalize

import "strings"

// Address lowercases a wallet address and trims surrounding whitespace.
func Address(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Email lowercases an email and trims surrounding whitespace.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
