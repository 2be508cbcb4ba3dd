// Package entity pulls contact details and an education credential out of raw résumé text.
//
// Every field is independent and best-effort: absence is reported as an empty string, never as an error.
package entity

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// Digits separated by spaces, tabs or dashes on a single line.
	phoneRe = regexp.MustCompile(`\+?\d[\d \t\-]{7,}\d`)

	// A credential keyword optionally followed, within 40 characters on the same line, by a field keyword.
	// The undotted "BE" must be upper case, otherwise the verb "be" would count as a degree.
	educationRe = regexp.MustCompile(`\b(?:(?i:B\.?Tech|BSc|MSc|MCA|MBA|Diploma|B\.E\.?)|BE\b).{0,40}(?i:CS|IT|Computer|Electronics)?`)
)

// Entities holds the fields found in a document. Empty strings mean "not found".
type Entities struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
}

// Extract runs every entity rule against the raw, un-normalized text.
func Extract(text string) Entities {
	email := Email(text)
	return Entities{
		Name:      GuessName(text, email),
		Email:     email,
		Phone:     Phone(text),
		Education: Education(text),
	}
}

// Email returns the first email address in text.
func Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone-like run: an optional "+", then digits, spaces and hyphens ending in a digit.
func Phone(text string) string {
	return phoneRe.FindString(text)
}

// Education returns the first credential phrase such as "B.Tech in Computer Science".
func Education(text string) string {
	return strings.TrimSpace(educationRe.FindString(text))
}
