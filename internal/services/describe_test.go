package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/heenakousar16/beauty/internal/config"
	"github.com/heenakousar16/beauty/internal/models"
)

// stubGenerator is a canned TextGenerator for exercising the generative and
// fallback paths without a live backend.
type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Generate(ctx context.Context, system, prompt string, opts GenerateOptions) (string, error) {
	return s.text, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		GeminiTemperature: 0.7,
		DescribeMaxTokens: 150,
		ConsultMaxTokens:  200,
	}
}

func TestDescribeNeverEmpty(t *testing.T) {
	d := NewDescriberService(testConfig(), nil)
	catalog := newTestCatalog("http://unused", 0)

	for _, p := range catalog.Samples("") {
		for _, gender := range []string{"", "male", "female", "all"} {
			if got := d.Describe(context.Background(), p, gender); got == "" {
				t.Errorf("Describe(%q, %q) returned empty text", p.Name, gender)
			}
		}
	}
}

func TestDescribeCategoryTemplates(t *testing.T) {
	d := NewDescriberService(testConfig(), nil)
	ctx := context.Background()

	foundation := d.Describe(ctx, models.Product{Name: "F", Category: "foundation"}, "all")
	lipstick := d.Describe(ctx, models.Product{Name: "L", Category: "lipstick"}, "all")
	mascara := d.Describe(ctx, models.Product{Name: "M", Category: "mascara"}, "all")
	blush := d.Describe(ctx, models.Product{Name: "B", Category: "blush"}, "all")

	if !strings.Contains(foundation, "foundation") {
		t.Errorf("foundation description missing category: %q", foundation)
	}
	if !strings.Contains(lipstick, "lipstick") {
		t.Errorf("lipstick description missing category: %q", lipstick)
	}
	if foundation == lipstick || lipstick == mascara || foundation == mascara {
		t.Errorf("expected distinct templates per category")
	}
	if !strings.Contains(blush, "blush") {
		t.Errorf("generic description should name the category: %q", blush)
	}
}

func TestDescribeInterpolatesGender(t *testing.T) {
	d := NewDescriberService(testConfig(), nil)

	got := d.Describe(context.Background(), models.Product{Name: "F", Category: "foundation"}, "Female")
	if !strings.Contains(got, "female users") {
		t.Errorf("description should mention the audience: %q", got)
	}
}

func TestDescribeUsesGeneratorWhenAvailable(t *testing.T) {
	d := NewDescriberService(testConfig(), stubGenerator{text: "A unique generated blurb."})

	got := d.Describe(context.Background(), models.Product{Name: "F", Category: "foundation"}, "all")
	if got != "A unique generated blurb." {
		t.Errorf("Describe = %q, want the generated text", got)
	}
}

func TestDescribeFallsBackOnGeneratorError(t *testing.T) {
	d := NewDescriberService(testConfig(), stubGenerator{err: errors.New("quota exceeded")})

	got := d.Describe(context.Background(), models.Product{Name: "F", Category: "foundation"}, "all")
	if got == "" || !strings.Contains(got, "foundation") {
		t.Errorf("expected the foundation template on generator failure, got %q", got)
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "all"},
		{"All", "all"},
		{"MALE", "male"},
		{" Female ", "female"},
	}
	for _, tt := range tests {
		if got := NormalizeGender(tt.in); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
