package domain

import "time"

// CanonicalTag is an ingredient tag drawn from the controlled vocabulary
// (e.g. "ui", "olijfolie"). The empty string means "no tag": tagging is
// best-effort and absence of a tag is a valid outcome, not an error.
type CanonicalTag string

// ProductRecord is the catalog's view of a product: a free-text display name
// plus the source category labels. Produced by the catalog client, consumed
// by the tag suggester, never persisted.
type ProductRecord struct {
	Barcode    string   `json:"barcode,omitempty"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// InventoryItem is a product the user owns, extended with the suggested
// ingredient tag. The tag is assigned once when the item is added and may be
// overwritten by an explicit user correction.
type InventoryItem struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Name          string       `json:"name"`
	Barcode       string       `json:"barcode,omitempty"`
	IngredientTag CanonicalTag `json:"ingredientTag,omitempty"`
	AddedAt       time.Time    `json:"addedAt"`
}

// RecipeIngredient is a single ingredient line of a recipe. Tag may be empty
// when tagging could not classify the ingredient.
type RecipeIngredient struct {
	Name string       `json:"name"`
	Tag  CanonicalTag `json:"tag,omitempty"`
}

// Recipe is a tagged ingredient list under a title.
type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// MatchResult reports how well a recipe matches the user's owned tags.
// Percentage is round(100 * matched / tagged) where tagged counts only
// ingredients that carry a tag; untagged ingredients contribute to neither
// side. Missing holds the display names of tagged-but-unowned ingredients.
type MatchResult struct {
	Percentage int      `json:"percentage"`
	Missing    []string `json:"missing"`
}

// VariantCheckResult reports whether a missing ingredient is a known variant
// of a pantry staple the user owns (e.g. a named oil when the user keeps a
// generic oil). A variant hit warrants a substitution prompt before the
// ingredient is treated as flatly unavailable.
type VariantCheckResult struct {
	IsVariant     bool         `json:"isVariant"`
	RelatedStaple CanonicalTag `json:"relatedStaple,omitempty"`
}

// MissingIngredient is a missing recipe ingredient annotated with its variant
// check and, when a variant was found, a phrased substitution prompt.
type MissingIngredient struct {
	Name          string       `json:"name"`
	IsVariant     bool         `json:"isVariant"`
	RelatedStaple CanonicalTag `json:"relatedStaple,omitempty"`
	Prompt        string       `json:"prompt,omitempty"`
}

// RecipeMatch is the full per-recipe match report returned to clients.
type RecipeMatch struct {
	RecipeID   string              `json:"recipeId"`
	Title      string              `json:"title"`
	Percentage int                 `json:"percentage"`
	Missing    []MissingIngredient `json:"missing"`
}

// TagSet is a set of canonical tags. Tags are added pre-normalized; the set
// itself does no normalization.
type TagSet map[CanonicalTag]struct{}

// NewTagSet builds a set from the given tags, skipping empty ones.
func NewTagSet(tags ...CanonicalTag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}

// Has reports whether the tag is in the set.
func (s TagSet) Has(tag CanonicalTag) bool {
	_, ok := s[tag]
	return ok
}

// Add inserts a tag into the set. Empty tags are ignored.
func (s TagSet) Add(tag CanonicalTag) {
	if tag != "" {
		s[tag] = struct{}{}
	}
}

// Union returns a new set containing the tags of both sets.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}
