// Package normalize folds case and whitespace so text can be compared with plain substring checks.
package normalize

import "strings"

// Text collapses every run of whitespace into a single space, trims the result and lowercases it.
// Text is idempotent: Text(Text(s)) == Text(s).
func Text(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Key returns the comparable form of a free-form skill or keyword.
func Key(s string) string {
	return Text(s)
}
