package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pantrylens/backend/internal/domain"
	"github.com/pantrylens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pantry *usecase.PantryService
}

// NewHandler creates a new HTTP handler
func NewHandler(pantry *usecase.PantryService) *Handler {
	return &Handler{pantry: pantry}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrylens-backend",
		"version": "1.0.0",
	})
}

// suggestTagRequest is the body of POST /tags/suggest. Name may be empty;
// the engine answers null rather than failing.
type suggestTagRequest struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// SuggestTag returns the canonical tag for a product name, or null.
func (h *Handler) SuggestTag(c *gin.Context) {
	var req suggestTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag := h.pantry.Tagger().SuggestTag(req.Name, req.Categories)
	c.JSON(http.StatusOK, gin.H{"tag": nullableTag(tag)})
}

// computeMatchRequest is the body of POST /match: an already-tagged
// ingredient list and a pre-unioned owned-tag set.
type computeMatchRequest struct {
	Ingredients []domain.RecipeIngredient `json:"ingredients"`
	OwnedTags   []domain.CanonicalTag     `json:"ownedTags"`
}

// ComputeMatch runs the pure match computation over the request payload.
func (h *Handler) ComputeMatch(c *gin.Context) {
	var req computeMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := usecase.ComputeMatch(req.Ingredients, domain.NewTagSet(req.OwnedTags...))
	c.JSON(http.StatusOK, result)
}

// checkVariantRequest is the body of POST /variants/check.
type checkVariantRequest struct {
	Name    string   `json:"name" binding:"required"`
	Staples []string `json:"staples"`
}

// CheckVariant reports whether a missing ingredient is a variant of an owned staple.
func (h *Handler) CheckVariant(c *gin.Context) {
	var req checkVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.pantry.Resolver().CheckVariant(req.Name, req.Staples)
	c.JSON(http.StatusOK, result)
}

// addItemRequest is the body of POST /items.
type addItemRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
}

// AddItem adds a product to the user's inventory, tagging it on the way in.
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.pantry.AddItem(c.Request.Context(), req.UserID, req.Name, req.Barcode)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItems returns the user's inventory.
func (h *Handler) ListItems(c *gin.Context) {
	userID := c.Query("userId")
	items, err := h.pantry.ListItems(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// toggleStapleRequest is the body of POST /staples/toggle.
type toggleStapleRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Tag     string `json:"tag" binding:"required"`
	Enabled bool   `json:"enabled"`
}

// ToggleStaple opts a vocabulary tag in or out of the user's staple set.
func (h *Handler) ToggleStaple(c *gin.Context) {
	var req toggleStapleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.pantry.ToggleStaple(c.Request.Context(), req.UserID, domain.CanonicalTag(req.Tag), req.Enabled); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddRecipe stores a recipe, tagging any untagged ingredients.
func (h *Handler) AddRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.pantry.AddRecipe(c.Request.Context(), &recipe)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// MatchRecipe computes the match report for one recipe against the user's stock.
func (h *Handler) MatchRecipe(c *gin.Context) {
	recipeID := c.Param("id")
	userID := c.Query("userId")

	match, err := h.pantry.MatchRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, match)
}

// nullableTag renders the empty tag as JSON null.
func nullableTag(tag domain.CanonicalTag) interface{} {
	if tag == "" {
		return nil
	}
	return tag
}

// statusFromError maps domain sentinel errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCatalogFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
