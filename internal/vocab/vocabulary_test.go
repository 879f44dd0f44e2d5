package vocab

import (
	"strings"
	"testing"
	"unicode"

	"github.com/pantrylens/backend/internal/domain"
)

func TestDefaultVocabulary(t *testing.T) {
	v := Default()

	t.Run("tags are lowercase and trimmed", func(t *testing.T) {
		for _, tag := range v.AllTags() {
			s := string(tag)
			if s == "" {
				t.Error("vocabulary contains an empty tag")
				continue
			}
			if s != strings.TrimSpace(s) {
				t.Errorf("tag %q has surrounding whitespace", s)
			}
			for _, r := range s {
				if unicode.IsUpper(r) {
					t.Errorf("tag %q is not lowercase", s)
					break
				}
				if r > unicode.MaxASCII {
					t.Errorf("tag %q carries diacritics", s)
					break
				}
			}
		}
	})

	t.Run("tags are unique", func(t *testing.T) {
		seen := make(map[domain.CanonicalTag]struct{})
		for _, tag := range v.AllTags() {
			if _, dup := seen[tag]; dup {
				t.Errorf("duplicate tag %q", tag)
			}
			seen[tag] = struct{}{}
		}
	})

	t.Run("category rules reference known tags", func(t *testing.T) {
		for _, rule := range v.CategoryRules {
			if rule.Key == "" {
				t.Error("category rule with empty key")
			}
			if len(rule.Tags) == 0 {
				t.Errorf("category rule %q has no tags", rule.Key)
			}
			for _, tag := range rule.Tags {
				if !v.IsTag(tag) {
					t.Errorf("rule %q references unknown tag %q", rule.Key, tag)
				}
			}
		}
	})

	t.Run("variant staples are vocabulary tags", func(t *testing.T) {
		for staple, variants := range v.Variants {
			if !v.IsTag(domain.CanonicalTag(staple)) {
				t.Errorf("variant staple %q is not a vocabulary tag", staple)
			}
			if len(variants) == 0 {
				t.Errorf("staple %q has an empty variant list", staple)
			}
		}
	})

	t.Run("variants never contain their staple name", func(t *testing.T) {
		// The resolver treats a candidate containing the staple name as the
		// staple itself, so such entries could never match.
		for staple, variants := range v.Variants {
			for _, variant := range variants {
				if strings.Contains(variant, staple) {
					t.Errorf("variant %q of %q would be shadowed by the identity rule", variant, staple)
				}
			}
		}
	})

	t.Run("brands are lowercase", func(t *testing.T) {
		for _, brand := range v.Brands {
			if brand != strings.ToLower(brand) {
				t.Errorf("brand %q is not lowercase", brand)
			}
		}
	})
}

func TestIsTag(t *testing.T) {
	v := Default()

	if !v.IsTag("ui") {
		t.Error("IsTag(ui) = false, want true")
	}
	if !v.IsTag("halfvolle melk") {
		t.Error("IsTag(halfvolle melk) = false, want true")
	}
	if v.IsTag("stofzuigerzak") {
		t.Error("IsTag(stofzuigerzak) = true, want false")
	}
	if v.IsTag("") {
		t.Error("IsTag(empty) = true, want false")
	}
}

func TestVariantsOf(t *testing.T) {
	v := Default()

	variants := v.VariantsOf("zonnebloemolie")
	if len(variants) == 0 {
		t.Fatal("VariantsOf(zonnebloemolie) is empty")
	}
	found := false
	for _, variant := range variants {
		if variant == "olijfolie" {
			found = true
		}
	}
	if !found {
		t.Errorf("VariantsOf(zonnebloemolie) = %v, want olijfolie included", variants)
	}

	if got := v.VariantsOf("zout"); got != nil {
		t.Errorf("VariantsOf(zout) = %v, want nil", got)
	}
}

func TestNew_DeduplicatesTags(t *testing.T) {
	v := New(
		[]TagGroup{
			{Name: "a", Tags: []domain.CanonicalTag{"ui", "tomaat"}},
			{Name: "b", Tags: []domain.CanonicalTag{"tomaat", "prei"}},
		},
		nil, nil, nil, nil,
	)

	tags := v.AllTags()
	if len(tags) != 3 {
		t.Fatalf("AllTags() = %v, want 3 unique tags", tags)
	}
	want := []domain.CanonicalTag{"ui", "tomaat", "prei"}
	for i, tag := range want {
		if tags[i] != tag {
			t.Errorf("AllTags()[%d] = %q, want %q (group order)", i, tags[i], tag)
		}
	}
}
