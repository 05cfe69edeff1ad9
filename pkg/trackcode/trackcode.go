// Package trackcode generates the short customer-facing lookup codes handed
// out when an appointment is created.
package trackcode

import (
	"crypto/rand"
	"fmt"
)

// Length is the fixed code length customers type into the tracking form.
const Length = 6

// Alphabet excludes nothing on purpose: the original system handed out plain
// A-Z0-9 codes and existing customers still hold them.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// rejectAbove is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are discarded so every character stays equally likely;
// 256 is not a multiple of 36, so plain modulo would favor the low indices.
const rejectAbove = 256 - 256%len(Alphabet)

// Generate returns a new random upper-case code of Length characters.
func Generate() (string, error) {
	out := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("trackcode: read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == Length {
				return string(out), nil
			}
		}
	}
}
