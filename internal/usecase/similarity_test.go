package usecase

import (
	"math"
	"testing"

	"github.com/pantrylens/backend/internal/domain"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "exact match", a: "paprika", b: "paprika", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "substring scores flat 0.8", a: "melk", b: "volle melk", want: 0.8},
		{name: "substring other direction", a: "volle melk", b: "melk", want: 0.8},
		{name: "tiny substring still scores 0.8", a: "ui", b: "uienringen", want: 0.8},
		{name: "edit distance fallback", a: "kaas", b: "saus", want: 0.5},
		{name: "one substitution in seven runes", a: "paprika", b: "paprica", want: 6.0 / 7.0},
		{name: "completely different", a: "zout", b: "appel", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_SelfIsAlwaysOne(t *testing.T) {
	for _, s := range []string{"", "a", "ui", "olijfolie", "halfvolle melk"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"tomaat", "tomat", 1},
		{"zout", "zout", 0},
		{"ui", "uien", 2},
	}

	for _, tt := range tests {
		got := levenshteinDistance([]rune(tt.a), []rune(tt.b))
		if got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindBestMatch(t *testing.T) {
	tags := []domain.CanonicalTag{"ui", "paprika", "tomaat", "zout", "olijfolie"}

	t.Run("exact match short-circuits", func(t *testing.T) {
		got := findBestMatch([]string{"paprika"}, tags, 0.7)
		if got != "paprika" {
			t.Errorf("findBestMatch = %q, want paprika", got)
		}
	})

	t.Run("substring match at 0.8 clears default threshold", func(t *testing.T) {
		got := findBestMatch([]string{"rode paprika"}, tags, 0.7)
		if got != "paprika" {
			t.Errorf("findBestMatch = %q, want paprika", got)
		}
	})

	t.Run("edit distance fallback above threshold", func(t *testing.T) {
		// "tomat" is not a contiguous substring of "tomaat"; similarity 5/6
		got := findBestMatch([]string{"tomat"}, tags, 0.7)
		if got != "tomaat" {
			t.Errorf("findBestMatch = %q, want tomaat", got)
		}
	})

	t.Run("returns empty below threshold", func(t *testing.T) {
		got := findBestMatch([]string{"wasmiddel"}, tags, 0.7)
		if got != "" {
			t.Errorf("findBestMatch = %q, want empty", got)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		got := findBestMatch(nil, tags, 0.7)
		if got != "" {
			t.Errorf("findBestMatch = %q, want empty", got)
		}
	})

	t.Run("first candidate takes priority", func(t *testing.T) {
		got := findBestMatch([]string{"zout", "paprika"}, tags, 0.7)
		if got != "zout" {
			t.Errorf("findBestMatch = %q, want zout", got)
		}
	})

	t.Run("stops scanning once a candidate reaches 0.8", func(t *testing.T) {
		// The first candidate scores a substring hit, so the second
		// candidate's exact match is never reached.
		custom := []domain.CanonicalTag{"appelmoes", "zout"}
		got := findBestMatch([]string{"appel", "zout"}, custom, 0.7)
		if got != "appelmoes" {
			t.Errorf("findBestMatch = %q, want appelmoes (early exit)", got)
		}
	})

	t.Run("zero threshold falls back to default", func(t *testing.T) {
		got := findBestMatch([]string{"wasmiddel"}, tags, 0)
		if got != "" {
			t.Errorf("findBestMatch = %q, want empty with default threshold", got)
		}
	})
}
