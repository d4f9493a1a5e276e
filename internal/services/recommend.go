package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/heenakousar16/beauty/internal/models"
)

// MaxRecommendations caps the ranked result.
const MaxRecommendations = 5

// RecommenderService filters and orders catalog products against the
// user-declared price range and minimum rating.
type RecommenderService struct{}

func NewRecommenderService() *RecommenderService {
	return &RecommenderService{}
}

// ParsePrice coerces a catalog price string to a number.
func ParsePrice(price string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(price), 64)
}

// Rank applies the price and rating filters and returns at most five
// products, best first. Products with unparsable prices are dropped. When
// any retained product carries a rating, the rating filter runs (dropping
// unrated products) and the result sorts descending by rating; otherwise it
// sorts ascending by price. Ties keep their catalog order (stable sort) -
// an implementation choice, not a contract.
func (r *RecommenderService) Rank(products []models.Product, priceRange models.PriceRange, minRating float64) []models.Product {
	type candidate struct {
		product models.Product
		price   float64
	}

	retained := make([]candidate, 0, len(products))
	for _, p := range products {
		price, err := ParsePrice(p.Price)
		if err != nil {
			continue
		}
		if price < priceRange.Lower || price > priceRange.Upper {
			continue
		}
		retained = append(retained, candidate{product: p, price: price})
	}

	hasRating := false
	for _, c := range retained {
		if c.product.Rating != nil {
			hasRating = true
			break
		}
	}

	if hasRating {
		rated := make([]candidate, 0, len(retained))
		for _, c := range retained {
			if c.product.Rating != nil && *c.product.Rating >= minRating {
				rated = append(rated, c)
			}
		}
		retained = rated
		sort.SliceStable(retained, func(i, j int) bool {
			return *retained[i].product.Rating > *retained[j].product.Rating
		})
	} else {
		sort.SliceStable(retained, func(i, j int) bool {
			return retained[i].price < retained[j].price
		})
	}

	if len(retained) > MaxRecommendations {
		retained = retained[:MaxRecommendations]
	}

	out := make([]models.Product, 0, len(retained))
	for _, c := range retained {
		out = append(out, c.product)
	}
	return out
}
