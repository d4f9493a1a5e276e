package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/models"
	"github.com/heenakousar16/beauty/internal/utils"
)

var catalogFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "beauty_catalog_remote_fallbacks_total",
	Help: "Remote catalog lookups that fell back to the built-in sample set",
})

// CatalogService supplies candidate products, preferring the built-in sample
// set and reaching out to the remote catalog API only when local data would
// be sparse. It never errors and never returns an empty slice.
type CatalogService struct {
	config *config.Config
	client *http.Client
}

func NewCatalogService(cfg *config.Config) *CatalogService {
	return &CatalogService{
		config: cfg,
		client: &http.Client{Timeout: cfg.CatalogTimeout},
	}
}

func rating(v float64) *float64 { return &v }

var sampleProducts = []models.Product{
	{
		Name:        "Natural Glow Bronzer",
		Brand:       "EarthLab Cosmetics",
		Price:       "28.99",
		ImageLink:   "https://images.unsplash.com/photo-1599733594230-6b823276abcc?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "bronzer",
		Rating:      rating(4.8),
		Description: "A natural bronzer that gives a sun-kissed glow.",
	},
	{
		Name:        "Radiant Blush Duo",
		Brand:       "Pure Beauty",
		Price:       "24.50",
		ImageLink:   "https://images.unsplash.com/photo-1581514578022-3aafd55bbe4b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "blush",
		Rating:      rating(4.5),
		Description: "A dual-color blush for the perfect cheek definition.",
	},
	{
		Name:        "Long-lasting Matte Lipstick",
		Brand:       "ColorPop",
		Price:       "19.99",
		ImageLink:   "https://images.unsplash.com/photo-1586495777744-4413f21062fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "lipstick",
		Rating:      rating(4.7),
		Description: "A creamy matte lipstick that lasts all day.",
	},
	{
		Name:        "Waterproof Mascara",
		Brand:       "Lash Focus",
		Price:       "22.00",
		ImageLink:   "https://images.unsplash.com/photo-1591360236480-4ed861025fa1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "mascara",
		Rating:      rating(4.6),
		Description: "Volumizing and lengthening mascara that's truly waterproof.",
	},
	{
		Name:        "Shimmer Eyeshadow Palette",
		Brand:       "Glimmer",
		Price:       "32.00",
		ImageLink:   "https://images.unsplash.com/photo-1583241119308-050d4c933519?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "eyeshadow",
		Rating:      rating(4.9),
		Description: "A palette of 12 shimmer eyeshadows for creating stunning looks.",
	},
	{
		Name:        "Hydrating Foundation",
		Brand:       "SkinGlow",
		Price:       "35.99",
		ImageLink:   "https://images.unsplash.com/photo-1590156206058-ae06662e566b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "foundation",
		Rating:      rating(4.7),
		Description: "A moisturizing foundation for dry skin types.",
	},
	{
		Name:        "Precision Eyeliner",
		Brand:       "Line Perfect",
		Price:       "18.50",
		ImageLink:   "https://images.unsplash.com/photo-1631214503374-35d266ee804e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "eyeliner",
		Rating:      rating(4.8),
		Description: "A fine-tip eyeliner for precise application.",
	},
	{
		Name:        "Brow Definer Pencil",
		Brand:       "BrowMaster",
		Price:       "16.99",
		ImageLink:   "https://images.unsplash.com/photo-1597225244660-1cd128c64284?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "eyebrow",
		Rating:      rating(4.6),
		Description: "Define and shape your brows with this precision pencil.",
	},
	{
		Name:        "Creamy Lip Liner",
		Brand:       "LipDefine",
		Price:       "15.00",
		ImageLink:   "https://images.unsplash.com/photo-1600612253971-422e7f7faeb6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "lip liner",
		Rating:      rating(4.4),
		Description: "A smooth, non-drying lip liner that prevents feathering.",
	},
	{
		Name:        "Quick-Dry Nail Polish",
		Brand:       "NailPro",
		Price:       "12.99",
		ImageLink:   "https://images.unsplash.com/photo-1603481588273-2f908a9a7a1b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Category:    "nail polish",
		Rating:      rating(4.3),
		Description: "Fast-drying, chip-resistant nail polish in vibrant colors.",
	},
}

// Samples returns the built-in products for the given category. A matching
// category yields exactly the matching subset; an unknown category yields the
// full set plus one synthesized generic product for it.
func (s *CatalogService) Samples(category string) []models.Product {
	if category != "" {
		matched := make([]models.Product, 0, len(sampleProducts))
		for _, p := range sampleProducts {
			if strings.EqualFold(p.Category, category) {
				matched = append(matched, p)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}

	out := make([]models.Product, len(sampleProducts))
	copy(out, sampleProducts)

	if category != "" {
		lower := strings.ToLower(category)
		out = append(out, models.Product{
			Name:        "Premium " + titleCase(category),
			Brand:       "BeautyMate",
			Price:       "25.00",
			ImageLink:   "https://images.unsplash.com/photo-1596462502278-27bfdc403348?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    lower,
			Rating:      rating(4.5),
			Description: fmt.Sprintf("A high-quality %s.", lower),
		})
	}

	return out
}

// Filters returns the distinct categories and brands of the built-in set,
// sorted, for populating the preference pickers.
func (s *CatalogService) Filters() (categories, brands []string) {
	catSet := make(map[string]bool)
	brandSet := make(map[string]bool)
	for _, p := range sampleProducts {
		catSet[p.Category] = true
		brandSet[p.Brand] = true
	}
	for c := range catSet {
		categories = append(categories, c)
	}
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(categories)
	sort.Strings(brands)
	return categories, brands
}

// Fetch returns candidate products for the given filters. The remote catalog
// is consulted only when the local subset is sparse and no brand was
// specified; every remote failure silently yields the local set.
func (s *CatalogService) Fetch(ctx context.Context, category, brand string) []models.Product {
	local := s.Samples(category)

	if len(local) >= 5 || (category != "" && brand != "") {
		return local
	}

	remote, err := s.fetchRemote(ctx, category, brand)
	if err != nil {
		catalogFallbacks.Inc()
		utils.LogWarn(ctx, "catalog API unavailable, using sample products",
			slog.String("category", category),
			slog.String("brand", brand),
			slog.Any("error", err),
		)
		return local
	}

	return remote
}

func (s *CatalogService) fetchRemote(ctx context.Context, category, brand string) ([]models.Product, error) {
	params := url.Values{}
	if category != "" {
		params.Set("product_type", strings.ToLower(category))
	}
	if brand != "" {
		params.Set("brand", strings.ToLower(brand))
	}

	reqURL := s.config.CatalogAPIURL
	if enc := params.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("parse catalog response: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("empty catalog response")
	}

	utils.LogInfo(ctx, "catalog API response received",
		slog.Int("product_count", len(products)),
		slog.Float64("duration_seconds", time.Since(start).Seconds()),
	)

	return products, nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
