// Package normalize holds the canonical forms used when values are stored
// or compared.
package normalize

import "strings"

// Email returns the canonical (lowercase, trimmed) form of an email address.
// Emails are stored and looked up in this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// CommaList splits a comma-separated field ("Math, Physics,Chem") on every
// comma and trims each segment, keeping order. Empty segments are kept.
func CommaList(s string) []string {
	out := strings.Split(s, ",")
	for i, part := range out {
		out[i] = strings.TrimSpace(part)
	}
	return out
}
