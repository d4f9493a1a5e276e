package models

// ═══════════════════════════════════════════════════════════
// CHAT REQUEST/RESPONSE MODELS
// ═══════════════════════════════════════════════════════════

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Gender    string `json:"gender"`
}

type ChatResponse struct {
	Type         string `json:"type"`
	Output       string `json:"output,omitempty"`
	Speak        string `json:"speak,omitempty"` // Text for client-side speech synthesis
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
}

type ChatHistoryResponse struct {
	SessionID    string `json:"session_id"`
	Conversation []Turn `json:"conversation"`
}

// ═══════════════════════════════════════════════════════════
// RECOMMENDATION MODELS
// ═══════════════════════════════════════════════════════════

type RecommendRequest struct {
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Gender    string  `json:"gender"`
	PriceMin  float64 `json:"price_min"`
	PriceMax  float64 `json:"price_max"`
	MinRating float64 `json:"min_rating"`
}

// ProductCard is a ranked product ready for rendering, with the
// personalized description already synthesized.
type ProductCard struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating,omitempty"`
	Description string   `json:"description"`
}

type RecommendResponse struct {
	Type     string        `json:"type"` // "products" or "no_results"
	Message  string        `json:"message,omitempty"`
	Products []ProductCard `json:"products,omitempty"`
}

type FiltersResponse struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// ═══════════════════════════════════════════════════════════
// ERROR MODELS
// ═══════════════════════════════════════════════════════════

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
