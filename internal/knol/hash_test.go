package knol

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/conorfennell/notehash/internal/domain"
)

func TestNormalize(t *testing.T) {
	q := domain.Question{
		Text:          "  What is the TALLEST animal? \r\n",
		Options:       []string{"Elephant", " Giraffe", "Kangaroo", "Camel "},
		CorrectAnswer: 1,
	}
	expected := "what is the tallest animal?\nelephant\ngiraffe\nkangaroo\ncamel\n1"
	normalized := Normalize(q)

	if normalized != expected {
		t.Errorf("Expected normalized string to be '%s', but got '%s'", expected, normalized)
	}
}

func TestHash(t *testing.T) {
	t.Run("hashes the normalized form", func(t *testing.T) {
		q := domain.Question{Text: "Q", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 2}
		expectedHash := fmt.Sprintf("%x", sha256.Sum256([]byte("q\na\nb\nc\nd\n2")))

		if hash := Hash(q); hash != expectedHash {
			t.Errorf("Expected hash '%s', but got '%s'", expectedHash, hash)
		}
	})

	t.Run("hash is deterministic", func(t *testing.T) {
		q1 := domain.Question{Text: "Test", Options: []string{"a", "b", "c", "d"}}
		q2 := domain.Question{Text: "Test", Options: []string{"a", "b", "c", "d"}}
		if Hash(q1) != Hash(q2) {
			t.Error("Expected hashes for identical questions to be the same")
		}
	})

	t.Run("normalization produces same hash", func(t *testing.T) {
		q1 := domain.Question{Text: "  what is go? ", Options: []string{"A language", "b", "c", "d"}}
		q2 := domain.Question{Text: "What Is Go?", Options: []string{"a language", "B", "C", "D"}}
		if Hash(q1) != Hash(q2) {
			t.Error("Expected hashes to be the same after normalization, but they were different.")
		}
	})

	t.Run("different answers have different hashes", func(t *testing.T) {
		q1 := domain.Question{Text: "Same", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0}
		q2 := domain.Question{Text: "Same", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1}
		if Hash(q1) == Hash(q2) {
			t.Error("Expected hashes for different answers to be different")
		}
	})
}
