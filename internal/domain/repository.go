package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for the external product catalog.
// The catalog is a black box returning {name, categories[]} records.
type CatalogClient interface {
	LookupProduct(ctx context.Context, barcode string) (*ProductRecord, error)
}

// ItemRepository persists inventory items keyed by user and item id.
type ItemRepository interface {
	SaveItem(ctx context.Context, item *InventoryItem) error
	GetItem(ctx context.Context, userID, itemID string) (*InventoryItem, error)
	ListItems(ctx context.Context, userID string) ([]InventoryItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
}

// RecipeRepository stores recipes with their tagged ingredient lists.
type RecipeRepository interface {
	SaveRecipe(ctx context.Context, recipe *Recipe) error
	GetRecipe(ctx context.Context, recipeID string) (*Recipe, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
}

// StapleRepository stores each user's opted-in pantry staple tags.
type StapleRepository interface {
	ListStaples(ctx context.Context, userID string) ([]CanonicalTag, error)
	SetStaple(ctx context.Context, userID string, tag CanonicalTag, enabled bool) error
}

// SuggestionWriter phrases a substitution prompt for a missing ingredient
// that turned out to be a variant of an owned staple. Treated as an opaque
// text-in/text-out collaborator (in production a generative-AI service).
type SuggestionWriter interface {
	WriteSubstitutionPrompt(ctx context.Context, missingName string, staple CanonicalTag) (string, error)
}
