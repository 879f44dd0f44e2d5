package vocab

import (
	"github.com/pantrylens/backend/internal/domain"
)

// TagGroup is a food category with its canonical ingredient tags.
type TagGroup struct {
	Name string
	Tags []domain.CanonicalTag
}

// CategoryRule maps a catalog category keyword onto a tag group. Rules are
// ordered: the first rule whose key appears in a product category wins.
type CategoryRule struct {
	Key  string
	Tags []domain.CanonicalTag
}

// Vocabulary is the static, curated ingredient vocabulary: tag groups, known
// brand tokens, category mapping rules, non-food category keywords, and the
// staple variant table. Built once at startup and never mutated; safe for
// concurrent use.
type Vocabulary struct {
	Groups             []TagGroup
	Brands             []string
	CategoryRules      []CategoryRule
	ExcludedCategories []string
	Variants           map[string][]string

	allTags []domain.CanonicalTag
	tagSet  map[domain.CanonicalTag]struct{}
}

// AllTags returns the flattened tag set in group order.
func (v *Vocabulary) AllTags() []domain.CanonicalTag {
	return v.allTags
}

// IsTag reports whether the (normalized) tag belongs to the vocabulary.
func (v *Vocabulary) IsTag(tag domain.CanonicalTag) bool {
	_, ok := v.tagSet[tag]
	return ok
}

// VariantsOf returns the configured variant names for a (normalized) staple
// name, or nil when the staple has no variant list.
func (v *Vocabulary) VariantsOf(staple string) []string {
	return v.Variants[staple]
}

// New builds a vocabulary from its configuration tables, precomputing the
// flattened tag list and membership set.
func New(groups []TagGroup, brands []string, rules []CategoryRule, excluded []string, variants map[string][]string) *Vocabulary {
	v := &Vocabulary{
		Groups:             groups,
		Brands:             brands,
		CategoryRules:      rules,
		ExcludedCategories: excluded,
		Variants:           variants,
		tagSet:             make(map[domain.CanonicalTag]struct{}),
	}
	for _, g := range groups {
		for _, t := range g.Tags {
			if _, dup := v.tagSet[t]; dup {
				continue
			}
			v.tagSet[t] = struct{}{}
			v.allTags = append(v.allTags, t)
		}
	}
	return v
}

// Default returns the shipped vocabulary. All entries are stored
// pre-normalized (lowercase, no diacritics).
func Default() *Vocabulary {
	return New(defaultGroups, defaultBrands, defaultCategoryRules, defaultExcludedCategories, defaultVariants)
}
