package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/utils"
)

const describeSystemPrompt = "You are a helpful beauty product recommendation assistant."

// DescriberService produces a short promotional description of one product,
// personalized by the declared gender audience. The generative path is tried
// first; any failure falls back to the deterministic category templates, so
// the result is never empty and never an error.
type DescriberService struct {
	config    *config.Config
	generator TextGenerator
}

func NewDescriberService(cfg *config.Config, generator TextGenerator) *DescriberService {
	return &DescriberService{
		config:    cfg,
		generator: generator,
	}
}

func (d *DescriberService) Describe(ctx context.Context, product models.Product, gender string) string {
	if d.generator != nil {
		text, err := d.generator.Generate(ctx, describeSystemPrompt, d.buildPrompt(product, gender), GenerateOptions{
			Temperature:     d.config.GeminiTemperature,
			MaxOutputTokens: int32(d.config.DescribeMaxTokens),
		})
		if err == nil {
			return text
		}
		generativeFallbacks.Inc()
		utils.LogWarn(ctx, "description generation failed, using template",
			slog.String("product", product.Name),
			slog.Any("error", err),
		)
	}

	return d.fallbackDescription(product, gender)
}

func (d *DescriberService) buildPrompt(product models.Product, gender string) string {
	productRating := 0.0
	if product.Rating != nil {
		productRating = *product.Rating
	}

	return fmt.Sprintf(`Create a compelling 3-sentence product description for a beauty recommendation system.
Product: %s
Brand: %s
Category: %s
Price: $%s
Rating: %.1f/5
Gender: %s

Focus on why this product is perfect for %s users.
Highlight its key benefits. Keep it professional but engaging.`,
		product.Name, product.Brand, product.Category, product.Price, productRating, gender, gender)
}

func (d *DescriberService) fallbackDescription(product models.Product, gender string) string {
	audience := NormalizeGender(gender)

	switch strings.ToLower(product.Category) {
	case "foundation":
		return fmt.Sprintf("This foundation provides flawless coverage while letting your skin breathe. Perfect for %s users looking for a natural finish that lasts all day.", audience)
	case "lipstick":
		return fmt.Sprintf("This richly pigmented lipstick offers vibrant color and moisturizing comfort. Specially formulated to complement %s users with long-lasting, crease-resistant wear.", audience)
	case "mascara":
		return fmt.Sprintf("Achieve dramatic lashes with this volumizing and lengthening mascara. Designed for %s users who want smudge-proof definition that lasts from day to night.", audience)
	default:
		return fmt.Sprintf("This premium %s delivers professional-quality results with every use. Specially formulated for %s users with high-performance ingredients for outstanding results.", strings.ToLower(product.Category), audience)
	}
}

// NormalizeGender lowers the declared gender label for interpolation into
// templates. Empty and "All" both read as "all".
func NormalizeGender(gender string) string {
	g := strings.ToLower(strings.TrimSpace(gender))
	if g == "" {
		return "all"
	}
	return g
}
