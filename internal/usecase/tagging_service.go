package usecase

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/vocab"
)

// Package-level compiled regex pattern for performance
var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// TagConfig holds configuration for the tagging service
type TagConfig struct {
	MatchThreshold     float64
	EnableDebugLogging bool
}

// TaggingService maps free-text product names and catalog categories onto
// canonical ingredient tags. Category metadata is tried first because it is
// more reliable than free-text names; name matching strips brands, extracts
// trailing candidates, and scores them against the vocabulary.
type TaggingService struct {
	vocab              *vocab.Vocabulary
	matchThreshold     float64
	enableDebugLogging bool
	brandPatterns      []*regexp.Regexp
}

// NewTaggingService creates a tagging service over the given vocabulary.
func NewTaggingService(v *vocab.Vocabulary, config TagConfig) *TaggingService {
	threshold := config.MatchThreshold
	if threshold <= 0 {
		threshold = defaultMatchThreshold
	}

	patterns := make([]*regexp.Regexp, 0, len(v.Brands))
	for _, brand := range v.Brands {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(brand)+`\b`))
	}

	return &TaggingService{
		vocab:              v,
		matchThreshold:     threshold,
		enableDebugLogging: config.EnableDebugLogging,
		brandPatterns:      patterns,
	}
}

// SuggestTag returns the best canonical tag for a product, or the empty tag
// when nothing confident is found. Never fails: an empty result is a valid,
// expected outcome.
func (s *TaggingService) SuggestTag(name string, categories []string) domain.CanonicalTag {
	if name == "" {
		return ""
	}

	if len(categories) > 0 {
		if tag := s.mapCategories(categories); tag != "" {
			if s.enableDebugLogging {
				log.Printf("[TAG] %q resolved via categories: %q", name, tag)
			}
			return tag
		}
	}

	cleaned := s.stripBrands(Normalize(name))
	candidates := extractCandidates(cleaned)
	tag := findBestMatch(candidates, s.vocab.AllTags(), s.matchThreshold)

	if s.enableDebugLogging {
		log.Printf("[TAG] %q | cleaned: %q | candidates: %v | tag: %q", name, cleaned, candidates, tag)
	}
	return tag
}

// NonFood reports whether every source category of a product matches the
// vocabulary's excluded-category list. Such products are stored untagged.
func (s *TaggingService) NonFood(categories []string) bool {
	if len(categories) == 0 {
		return false
	}
	for _, cat := range categories {
		normalized := Normalize(cat)
		excluded := false
		for _, key := range s.vocab.ExcludedCategories {
			if strings.Contains(normalized, key) {
				excluded = true
				break
			}
		}
		if !excluded {
			return false
		}
	}
	return true
}

// stripBrands removes whole-word occurrences of known brand tokens from a
// normalized product name. Removals are disjoint word matches, so removal
// order does not affect the result.
func (s *TaggingService) stripBrands(normalizedText string) string {
	cleaned := normalizedText
	for _, pattern := range s.brandPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, " ")
	}
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// mapCategories resolves a tag directly from catalog category labels. The
// first rule whose key appears in a normalized category wins; within that
// rule, comma-segments of the category are checked for a substring match
// (either direction) against the rule's tags, defaulting to the rule's first
// tag when no segment matches.
func (s *TaggingService) mapCategories(categories []string) domain.CanonicalTag {
	for _, category := range categories {
		normalized := Normalize(category)
		if normalized == "" {
			continue
		}

		for _, rule := range s.vocab.CategoryRules {
			if !strings.Contains(normalized, rule.Key) {
				continue
			}

			for _, segment := range strings.Split(normalized, ",") {
				seg := strings.TrimSpace(segment)
				if seg == "" {
					continue
				}
				for _, tag := range rule.Tags {
					t := string(tag)
					if strings.Contains(seg, t) || strings.Contains(t, seg) {
						return tag
					}
				}
			}

			return rule.Tags[0]
		}
	}
	return ""
}

// extractCandidates derives tag candidates from a cleaned name. Product
// names run [brand] [descriptor...] [food noun], so candidates are taken
// from the tail: the last token, the last two joined, the last three joined.
// Tokens of two runes or fewer are too short to be meaningful food nouns and
// are discarded up front.
func extractCandidates(cleanedText string) []string {
	var tokens []string
	for _, token := range strings.Fields(cleanedText) {
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		tokens = append(tokens, token)
	}

	n := len(tokens)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []string{tokens[0]}
	}

	candidates := []string{tokens[n-1]}
	if n >= 3 {
		candidates = append(candidates, strings.Join(tokens[n-2:], " "))
	}
	if n >= 4 {
		candidates = append(candidates, strings.Join(tokens[n-3:], " "))
	}
	return candidates
}
