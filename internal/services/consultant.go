package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/utils"
)

const consultantSystemPrompt = "You are Sofi, a knowledgeable and friendly virtual beauty consultant."

// WelcomeMessage opens every new conversation, inserted exactly once at
// session creation.
const WelcomeMessage = "Hi there! I'm Sofi, your virtual beauty consultant 💋. Ask me anything beauty-related like 'What blush suits dry skin?' or 'How to pick foundation for oily skin?'"

type keywordAnswer struct {
	keyword  string
	template string
}

// consultantAnswers is deliberately an ordered list, not a map: when a
// question mentions several keywords, the first declared match wins.
var consultantAnswers = []keywordAnswer{
	{"foundation", "For choosing the right foundation, match it to your jawline in natural light. If you're {gender}, look for formulas designed for your skin type - dry, oily, or combination. Test a few shades to find your perfect match."},
	{"lipstick", "When selecting lipstick, consider your skin undertone - cool tones look best with blue-reds, warm tones with orange-reds. For {gender} users, matte formulas last longer while creams are more hydrating."},
	{"eyeshadow", "The best eyeshadows for {gender} users depend on your eye color. Brown eyes pop with purples and blues, green eyes with rusty reds, and blue eyes with warm bronzes and coppers. Start with a neutral palette for versatility."},
	{"mascara", "For the best mascara application, wiggle the wand at the base of your lashes then sweep upward. Curling your lashes first creates an eye-opening effect, and you can layer for more drama."},
	{"bronzer", "Apply bronzer where the sun naturally hits: forehead, cheekbones, bridge of nose, and jawline. For {gender} users, choose a shade just 1-2 tones deeper than your skin for the most natural result."},
	{"blush", "For blush placement, smile and apply to the apples of your cheeks, then blend upward toward your temples. Cream blushes work well for dry skin, while powders are better for oily skin."},
	{"skincare", "A basic skincare routine should include cleanser, moisturizer, and sunscreen. For {gender} users, add a serum with ingredients targeting your specific concerns like vitamin C for brightness or hyaluronic acid for hydration."},
}

const genericAnswer = "Thank you for your beauty question! For {gender} users, I generally recommend starting with quality products suited to your skin type and tone. Could you provide more details about what specific beauty advice you're looking for?"

// ConsultantService answers free-text beauty questions as Sofi. The
// generative path is tried once; on failure or absence the ordered keyword
// table answers, and a generic ask-for-detail reply covers everything else.
type ConsultantService struct {
	config    *config.Config
	generator TextGenerator
}

func NewConsultantService(cfg *config.Config, generator TextGenerator) *ConsultantService {
	return &ConsultantService{
		config:    cfg,
		generator: generator,
	}
}

func (c *ConsultantService) Respond(ctx context.Context, question, gender string) string {
	if c.generator != nil {
		text, err := c.generator.Generate(ctx, consultantSystemPrompt, c.buildPrompt(question, gender), GenerateOptions{
			Temperature:     c.config.GeminiTemperature,
			MaxOutputTokens: int32(c.config.ConsultMaxTokens),
		})
		if err == nil {
			return text
		}
		generativeFallbacks.Inc()
		utils.LogWarn(ctx, "consultant generation failed, using keyword answers", slog.Any("error", err))
	}

	audience := NormalizeGender(gender)
	questionLower := strings.ToLower(question)

	for _, qa := range consultantAnswers {
		if strings.Contains(questionLower, qa.keyword) {
			return strings.ReplaceAll(qa.template, "{gender}", audience)
		}
	}

	return strings.ReplaceAll(genericAnswer, "{gender}", audience)
}

func (c *ConsultantService) buildPrompt(question, gender string) string {
	return fmt.Sprintf(`You are a professional beauty consultant named Sofi. The user has asked the following question:
%q

Provide a helpful, personalized response about beauty products or techniques.
User's gender preference: %s

Keep your response friendly, concise (max 3-4 sentences), and actionable.
Include specific product types when relevant, but don't mention specific brands.`, question, gender)
}
