package domain

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no product for a barcode
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrItemNotFound is returned when an inventory item does not exist
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrRecipeNotFound is returned when a recipe does not exist
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogFailure is returned when the catalog API request fails
	ErrCatalogFailure = errors.New("catalog API request failed")
)
