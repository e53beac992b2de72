package knol

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/conorfennell/notehash/internal/domain"
)

// Normalize concatenates the question's content after cleaning each part.
// It trims whitespace, lowercases, and normalizes line endings for the text
// and every option, then appends the correct option number.
func Normalize(q domain.Question) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	parts := make([]string, 0, len(q.Options)+2)
	parts = append(parts, normalizePart(q.Text))
	for _, opt := range q.Options {
		parts = append(parts, normalizePart(opt))
	}
	parts = append(parts, strconv.Itoa(q.CorrectAnswer))

	// Newline separation keeps "ab"+"c" and "a"+"bc" apart.
	return strings.Join(parts, "\n")
}

// Hash takes a question, normalizes it, and returns its SHA-256 hash as a hex string.
func Hash(q domain.Question) string {
	normalized := Normalize(q)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}
