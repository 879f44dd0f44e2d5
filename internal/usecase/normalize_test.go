package usecase

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Ui", want: "ui"},
		{name: "strips accents", input: "üi", want: "ui"},
		{name: "case and accents together", input: "Crème Fraîche", want: "creme fraiche"},
		{name: "trims surrounding whitespace", input: "  olijfolie \t", want: "olijfolie"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "inner whitespace preserved", input: "rode  paprika", want: "rode  paprika"},
		{name: "mixed diacritics", input: "Jalapeño Crêpe À la", want: "jalapeno crepe a la"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Ui", "üi", "Crème Fraîche", "  Gebakken Çhampignons  ", ""}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalize_ConcurrentAccess(t *testing.T) {
	inputs := []string{"Crème Fraîche", "Jalapeño Crêpe", "üi", "Çhampignons", "Gerookte ZALM"}
	wants := []string{"creme fraiche", "jalapeno crepe", "ui", "champignons", "gerookte zalm"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				idx := j % len(inputs)
				if got := Normalize(inputs[idx]); got != wants[idx] {
					t.Errorf("Normalize(%q) = %q, want %q", inputs[idx], got, wants[idx])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNormalize_CaseAndAccentInsensitive(t *testing.T) {
	variants := []string{"Ui", "ui", "üi", "UI"}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q (same as %q)", v, got, want, variants[0])
		}
	}
}
