package service

import (
	"math/rand/v2"
	"regexp"
	"strconv"
)

var cardNumberPattern = regexp.MustCompile(`^\d{16}$`)

// GenerateCardNumber returns a random 16-digit card number candidate.
// Uniqueness against the store is the caller's job.
func GenerateCardNumber() string {
	n := 1_000_000_000_000_000 + rand.Int64N(9_000_000_000_000_000)
	return strconv.FormatInt(n, 10)
}

// ValidCardNumber reports whether s is a 16-digit numeric string.
func ValidCardNumber(s string) bool {
	return cardNumberPattern.MatchString(s)
}

// MaskCardNumber masks a card number, showing only the last 4 digits.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return "****" + number[len(number)-4:]
}
