// Package llm provides the Gemini client abstraction for the AI-assisted
// extraction path.
package llm

// ModelTier selects a capability level rather than a concrete model name,
// so call sites state intent and the tier-to-model mapping stays in one place.
type ModelTier string

const (
	// TierLite covers classification and short extraction.
	TierLite ModelTier = "lite"
	// TierStandard covers structured CV extraction.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers long-document reasoning.
	TierAdvanced ModelTier = "advanced"
)

// extractionTemperature keeps extraction output stable across runs.
const extractionTemperature = 0.1

// Config maps tiers to Gemini model names and fixes the sampling
// temperature applied to every call.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultGeminiConfig returns the production tier mapping.
func DefaultGeminiConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: extractionTemperature,
	}
}

// ModelFor resolves a tier to a model name, falling back to standard and
// then lite when the requested tier is not configured. Returns "" when
// nothing is configured at all.
func (c *Config) ModelFor(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if name, ok := c.Models[t]; ok {
			return name
		}
	}
	return ""
}

// WithModel returns a copy of the config with a single tier remapped.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for t, name := range c.Models {
		models[t] = name
	}
	models[tier] = model

	return &Config{Models: models, Temperature: c.Temperature}
}
