package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/vocab"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// PantryConfig holds configuration for the pantry service
type PantryConfig struct {
	CacheTTL           time.Duration
	MatchThreshold     float64
	EnableDebugLogging bool
}

// PantryService orchestrates the tagging and matching core against the
// external collaborators: catalog lookups (cached), the item/recipe/staple
// stores, and the substitution prompt writer.
type PantryService struct {
	cache              domain.CacheRepository
	catalog            domain.CatalogClient
	items              domain.ItemRepository
	recipes            domain.RecipeRepository
	staples            domain.StapleRepository
	writer             domain.SuggestionWriter
	tagger             *TaggingService
	resolver           *VariantResolver
	vocab              *vocab.Vocabulary
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewPantryService creates a pantry service with its dependencies.
func NewPantryService(
	cache domain.CacheRepository,
	catalog domain.CatalogClient,
	items domain.ItemRepository,
	recipes domain.RecipeRepository,
	staples domain.StapleRepository,
	writer domain.SuggestionWriter,
	v *vocab.Vocabulary,
	config PantryConfig,
) *PantryService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // Default 30 days
	}

	return &PantryService{
		cache:   cache,
		catalog: catalog,
		items:   items,
		recipes: recipes,
		staples: staples,
		writer:  writer,
		tagger: NewTaggingService(v, TagConfig{
			MatchThreshold:     config.MatchThreshold,
			EnableDebugLogging: config.EnableDebugLogging,
		}),
		resolver:           NewVariantResolver(v),
		vocab:              v,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Tagger exposes the underlying tagging service for direct tag suggestions.
func (s *PantryService) Tagger() *TaggingService {
	return s.tagger
}

// Resolver exposes the underlying variant resolver.
func (s *PantryService) Resolver() *VariantResolver {
	return s.resolver
}

// AddItem adds a product to the user's inventory. With a barcode the catalog
// is consulted (cache-first) for the display name and categories; the tag
// suggester then assigns a canonical tag. Non-food products and products the
// suggester cannot classify are stored untagged.
func (s *PantryService) AddItem(ctx context.Context, userID, name, barcode string) (*domain.InventoryItem, error) {
	if userID == "" || (name == "" && barcode == "") {
		return nil, domain.ErrInvalidRequest
	}

	var categories []string
	if barcode != "" {
		product, err := s.lookupProduct(ctx, barcode)
		switch {
		case err == nil:
			if name == "" {
				name = product.Name
			}
			categories = product.Categories
		case errors.Is(err, domain.ErrProductNotFound):
			// Unknown barcode; fall back to the manually entered name.
			if name == "" {
				return nil, err
			}
		default:
			return nil, err
		}
	}

	var tag domain.CanonicalTag
	if !s.tagger.NonFood(categories) {
		tag = s.tagger.SuggestTag(name, categories)
	}

	item := &domain.InventoryItem{
		ID:            newItemID(),
		UserID:        userID,
		Name:          name,
		Barcode:       barcode,
		IngredientTag: tag,
		AddedAt:       time.Now(),
	}
	if err := s.items.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	if s.enableDebugLogging {
		log.Printf("[PANTRY] Added item %q for user %s (tag: %q)", name, userID, tag)
	}
	return item, nil
}

// ListItems returns the user's inventory.
func (s *PantryService) ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	if userID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.items.ListItems(ctx, userID)
}

// ToggleStaple opts a vocabulary tag in or out of the user's staple set.
func (s *PantryService) ToggleStaple(ctx context.Context, userID string, tag domain.CanonicalTag, enabled bool) error {
	if userID == "" {
		return domain.ErrInvalidRequest
	}
	normalized := domain.CanonicalTag(Normalize(string(tag)))
	if !s.vocab.IsTag(normalized) {
		return domain.ErrInvalidRequest
	}
	return s.staples.SetStaple(ctx, userID, normalized, enabled)
}

// AddRecipe stores a recipe. Untagged ingredients get a tag suggestion from
// their name; supplied tags are normalized.
func (s *PantryService) AddRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if recipe == nil || recipe.ID == "" || recipe.Title == "" {
		return nil, domain.ErrInvalidRequest
	}

	for i := range recipe.Ingredients {
		if recipe.Ingredients[i].Tag == "" {
			recipe.Ingredients[i].Tag = s.tagger.SuggestTag(recipe.Ingredients[i].Name, nil)
		} else {
			recipe.Ingredients[i].Tag = domain.CanonicalTag(Normalize(string(recipe.Ingredients[i].Tag)))
		}
	}

	if err := s.recipes.SaveRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// MatchRecipe computes the match report for one recipe against the user's
// current stock. Owned tags are the union of inventory tags and staples.
// Missing ingredients are run through the variant resolver; variant hits get
// a substitution prompt from the writer collaborator.
func (s *PantryService) MatchRecipe(ctx context.Context, userID, recipeID string) (*domain.RecipeMatch, error) {
	if userID == "" || recipeID == "" {
		return nil, domain.ErrInvalidRequest
	}

	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	stapleTags, err := s.staples.ListStaples(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned := domain.NewTagSet(stapleTags...)
	for _, item := range items {
		owned.Add(item.IngredientTag)
	}

	result := ComputeMatch(recipe.Ingredients, owned)

	stapleNames := make([]string, len(stapleTags))
	for i, t := range stapleTags {
		stapleNames[i] = string(t)
	}

	missing := make([]domain.MissingIngredient, 0, len(result.Missing))
	for _, name := range result.Missing {
		check := s.resolver.CheckVariant(name, stapleNames)
		mi := domain.MissingIngredient{
			Name:          name,
			IsVariant:     check.IsVariant,
			RelatedStaple: check.RelatedStaple,
		}
		if check.IsVariant && s.writer != nil {
			prompt, err := s.writer.WriteSubstitutionPrompt(ctx, name, check.RelatedStaple)
			if err != nil {
				log.Printf("[PANTRY] Prompt writer failed for %q: %v", name, err)
			} else {
				mi.Prompt = prompt
			}
		}
		missing = append(missing, mi)
	}

	return &domain.RecipeMatch{
		RecipeID:   recipe.ID,
		Title:      recipe.Title,
		Percentage: result.Percentage,
		Missing:    missing,
	}, nil
}

// lookupProduct fetches a catalog record, cache-first.
func (s *PantryService) lookupProduct(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	cacheKey := fmt.Sprintf("catalog:%s", normalizeForCacheKey(barcode))

	if cached, err := s.getCachedProduct(ctx, cacheKey); err == nil && cached != nil {
		return cached, nil
	}

	product, err := s.catalog.LookupProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, product, s.cacheTTL); err != nil && s.enableDebugLogging {
		log.Printf("[PANTRY] Failed to cache product %s: %v", barcode, err)
	}
	return product, nil
}

// getCachedProduct retrieves a product record from cache. The cache stores
// values through a JSON round trip, so records come back as generic maps.
func (s *PantryService) getCachedProduct(ctx context.Context, key string) (*domain.ProductRecord, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if product, ok := value.(*domain.ProductRecord); ok {
		return product, nil
	}
	if dataMap, ok := value.(map[string]interface{}); ok {
		return mapToProductRecord(dataMap), nil
	}
	return nil, domain.ErrCacheMiss
}

// mapToProductRecord converts a map (from JSON cache) to a ProductRecord
func mapToProductRecord(data map[string]interface{}) *domain.ProductRecord {
	record := &domain.ProductRecord{}

	if v, ok := data["barcode"].(string); ok {
		record.Barcode = v
	}
	if v, ok := data["name"].(string); ok {
		record.Name = v
	}
	if categories, ok := data["categories"].([]interface{}); ok {
		for _, c := range categories {
			if cat, ok := c.(string); ok {
				record.Categories = append(record.Categories, cat)
			}
		}
	}
	return record
}

// normalizeForCacheKey normalizes a string for use as cache key component.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

var itemSeq atomic.Uint64

// newItemID returns a process-unique inventory item id.
func newItemID() string {
	return fmt.Sprintf("itm_%x_%d", time.Now().UnixNano(), itemSeq.Add(1))
}
