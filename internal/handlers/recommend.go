package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heenakousar16/beauty/internal/container"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/utils"
)

const placeholderImage = "https://via.placeholder.com/400x200?text=Product+Image"

type RecommendHandler struct {
	container *container.Container
}

func NewRecommendHandler(c *container.Container) *RecommendHandler {
	return &RecommendHandler{
		container: c,
	}
}

// HandleRecommendations runs the full pipeline: fetch candidates, rank them
// against the declared preferences, and synthesize a description per product.
func (h *RecommendHandler) HandleRecommendations(c *fiber.Ctx) error {
	var req models.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body",
		})
	}

	if req.PriceMax == 0 {
		req.PriceMax = 100
	}
	if req.PriceMin > req.PriceMax {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "validation_error",
			Message: "price_min must not exceed price_max",
		})
	}
	if req.MinRating < 0 || req.MinRating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "validation_error",
			Message: "min_rating must be between 0 and 5",
		})
	}

	category := normalizeFilter(req.Category)
	brand := normalizeFilter(req.Brand)

	ctx := c.UserContext()
	start := time.Now()

	products := h.container.CatalogService.Fetch(ctx, category, brand)
	ranked := h.container.Recommender.Rank(products, models.PriceRange{
		Lower: req.PriceMin,
		Upper: req.PriceMax,
	}, req.MinRating)

	if len(ranked) == 0 {
		return c.JSON(models.RecommendResponse{
			Type:    "no_results",
			Message: "No matching products found. Try adjusting your preferences.",
		})
	}

	cards := make([]models.ProductCard, 0, len(ranked))
	for _, p := range ranked {
		image := p.ImageLink
		if image == "" {
			image = placeholderImage
		}
		cards = append(cards, models.ProductCard{
			Name:        p.Name,
			Brand:       p.Brand,
			Price:       p.Price,
			Image:       image,
			Category:    p.Category,
			Rating:      p.Rating,
			Description: h.container.Describer.Describe(ctx, p, req.Gender),
		})
	}

	utils.LogInfo(ctx, "recommendations served",
		slog.String("category", category),
		slog.String("brand", brand),
		slog.Int("product_count", len(cards)),
		slog.Float64("duration_seconds", time.Since(start).Seconds()),
	)

	return c.JSON(models.RecommendResponse{
		Type:     "products",
		Products: cards,
	})
}

// HandleFilters returns the categories and brands of the built-in catalog
// for the preference pickers.
func (h *RecommendHandler) HandleFilters(c *fiber.Ctx) error {
	categories, brands := h.container.CatalogService.Filters()
	return c.JSON(models.FiltersResponse{
		Categories: categories,
		Brands:     brands,
	})
}

// normalizeFilter maps the UI's "All" sentinel (any casing) to no filter.
func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}
