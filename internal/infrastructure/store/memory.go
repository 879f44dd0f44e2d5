package store

import (
	"context"
	"sort"
	"sync"

	"github.com/pantrylens/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory key-value store backing the item,
// recipe and staple repositories. Items and staples are keyed by user id;
// recipes are global.
type MemoryStore struct {
	mutex   sync.RWMutex
	items   map[string]map[string]domain.InventoryItem // userID -> itemID -> item
	recipes map[string]domain.Recipe
	staples map[string]map[domain.CanonicalTag]struct{} // userID -> staple set
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:   make(map[string]map[string]domain.InventoryItem),
		recipes: make(map[string]domain.Recipe),
		staples: make(map[string]map[domain.CanonicalTag]struct{}),
	}
}

// SaveItem inserts or replaces an inventory item.
func (s *MemoryStore) SaveItem(ctx context.Context, item *domain.InventoryItem) error {
	if item == nil || item.UserID == "" || item.ID == "" {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	userItems, ok := s.items[item.UserID]
	if !ok {
		userItems = make(map[string]domain.InventoryItem)
		s.items[item.UserID] = userItems
	}
	userItems[item.ID] = *item
	return nil
}

// GetItem returns one inventory item.
func (s *MemoryStore) GetItem(ctx context.Context, userID, itemID string) (*domain.InventoryItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, ok := s.items[userID][itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// ListItems returns all items of a user, ordered by insertion time.
func (s *MemoryStore) ListItems(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]domain.InventoryItem, 0, len(s.items[userID]))
	for _, item := range s.items[userID] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items, nil
}

// DeleteItem removes one inventory item.
func (s *MemoryStore) DeleteItem(ctx context.Context, userID, itemID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.items[userID][itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(s.items[userID], itemID)
	return nil
}

// SaveRecipe inserts or replaces a recipe.
func (s *MemoryStore) SaveRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if recipe == nil || recipe.ID == "" {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.recipes[recipe.ID] = *recipe
	return nil
}

// GetRecipe returns one recipe.
func (s *MemoryStore) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recipe, ok := s.recipes[recipeID]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return &recipe, nil
}

// ListRecipes returns all recipes ordered by id.
func (s *MemoryStore) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recipes := make([]domain.Recipe, 0, len(s.recipes))
	for _, recipe := range s.recipes {
		recipes = append(recipes, recipe)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
	return recipes, nil
}

// ListStaples returns the user's opted-in staple tags, sorted.
func (s *MemoryStore) ListStaples(ctx context.Context, userID string) ([]domain.CanonicalTag, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tags := make([]domain.CanonicalTag, 0, len(s.staples[userID]))
	for tag := range s.staples[userID] {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// SetStaple toggles a staple tag for a user.
func (s *MemoryStore) SetStaple(ctx context.Context, userID string, tag domain.CanonicalTag, enabled bool) error {
	if userID == "" || tag == "" {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	set, ok := s.staples[userID]
	if !ok {
		set = make(map[domain.CanonicalTag]struct{})
		s.staples[userID] = set
	}
	if enabled {
		set[tag] = struct{}{}
	} else {
		delete(set, tag)
	}
	return nil
}
