package usecase

import (
	"math"

	"github.com/pantrylens/backend/internal/domain"
)

// ComputeMatch reports what fraction of a recipe's ingredients the user
// already owns and which display names are missing. Untagged ingredients
// carry no matchable signal and are excluded from both numerator and
// denominator, so the percentage is taken over tagged ingredients only. A
// recipe with no ingredients, or none tagged, reports 0% with nothing
// missing rather than an error.
//
// ownedTags is the pre-unioned set of inventory tags and opted-in staples;
// the two sources are indistinguishable here.
func ComputeMatch(ingredients []domain.RecipeIngredient, ownedTags domain.TagSet) domain.MatchResult {
	missing := []string{}
	if len(ingredients) == 0 {
		return domain.MatchResult{Percentage: 0, Missing: missing}
	}

	matched := 0
	tagged := 0
	for _, ingredient := range ingredients {
		if ingredient.Tag == "" {
			continue
		}
		tagged++
		if ownedTags.Has(ingredient.Tag) {
			matched++
		} else {
			missing = append(missing, ingredient.Name)
		}
	}

	if tagged == 0 {
		return domain.MatchResult{Percentage: 0, Missing: missing}
	}

	percentage := int(math.Round(100 * float64(matched) / float64(tagged)))
	return domain.MatchResult{Percentage: percentage, Missing: missing}
}
