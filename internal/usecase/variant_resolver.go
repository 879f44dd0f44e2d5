package usecase

import (
	"strings"

	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/vocab"
)

// VariantResolver decides whether a missing ingredient is a known variant of
// a staple the user owns, so the caller can prompt instead of silently
// flagging it missing.
type VariantResolver struct {
	vocab *vocab.Vocabulary
}

// NewVariantResolver creates a resolver over the given vocabulary.
func NewVariantResolver(v *vocab.Vocabulary) *VariantResolver {
	return &VariantResolver{vocab: v}
}

// CheckVariant checks a missing ingredient name against each owned staple.
// When the candidate is the staple itself (exact or substring either way),
// the ingredient is present under a different surface form — earlier
// matching failed to recognize it, not a variant scenario — and resolution
// stops with a negative result. Otherwise the staple's configured variant
// list is checked with the same normalize+substring rule; the first hit
// names the related staple. The result never decides missing/present status
// by itself, it only flags that a prompt is warranted.
func (r *VariantResolver) CheckVariant(missingIngredientName string, ownedStapleNames []string) domain.VariantCheckResult {
	candidate := Normalize(missingIngredientName)
	if candidate == "" {
		return domain.VariantCheckResult{IsVariant: false}
	}

	for _, stapleName := range ownedStapleNames {
		staple := Normalize(stapleName)
		if staple == "" {
			continue
		}

		if candidate == staple || strings.Contains(candidate, staple) || strings.Contains(staple, candidate) {
			return domain.VariantCheckResult{IsVariant: false}
		}

		for _, variant := range r.vocab.VariantsOf(staple) {
			v := Normalize(variant)
			if candidate == v || strings.Contains(candidate, v) || strings.Contains(v, candidate) {
				return domain.VariantCheckResult{IsVariant: true, RelatedStaple: domain.CanonicalTag(staple)}
			}
		}
	}

	return domain.VariantCheckResult{IsVariant: false}
}
