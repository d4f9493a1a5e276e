package models

// ═══════════════════════════════════════════════════════════
// CATALOG MODELS
// ═══════════════════════════════════════════════════════════

// Product is one catalog entry. Field tags follow the makeup catalog API
// payload, so remote results decode directly. Price arrives as text and stays
// text until the ranking step coerces it; Rating may be absent.
type Product struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       string   `json:"price"`
	ImageLink   string   `json:"image_link"`
	Category    string   `json:"product_type"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
}

// PriceRange is an inclusive price filter, Lower <= Upper.
type PriceRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}
