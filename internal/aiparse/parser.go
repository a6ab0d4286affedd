package aiparse

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hubhub/cvparser/internal/llm"
	"github.com/hubhub/cvparser/internal/prompts"
	"github.com/hubhub/cvparser/internal/types"
)

const (
	promptFile = "extraction.json"
	promptKey  = "extract-cv"

	// fallbackConfidence is reported by the regex path, which extracts
	// less context than the model but never fails outright.
	fallbackConfidence = 0.7
)

// Parser extracts structured CV data through a generative model.
type Parser struct {
	client llm.Client
	tier   llm.ModelTier
}

// New creates a Parser backed by a Gemini client. It fails fast when the
// API key is empty so callers can decide to use the heuristic path instead.
func New(ctx context.Context, apiKey string) (*Parser, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &MissingCredentialError{}
	}
	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return nil, &ModelCallError{Message: "creating client", Cause: err}
	}
	return &Parser{client: client, tier: llm.TierStandard}, nil
}

// NewWithClient wires an existing client, which lets tests substitute a fake.
func NewWithClient(client llm.Client) *Parser {
	return &Parser{client: client, tier: llm.TierStandard}
}

// Close releases the underlying model client.
func (p *Parser) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

// ParseWithAI sends the raw CV text to the model and decodes the structured
// response. The returned data always carries the original raw text.
func (p *Parser) ParseWithAI(ctx context.Context, rawText string) (*types.ParsedCVData, error) {
	if p.client == nil {
		return nil, &MissingCredentialError{}
	}

	tmpl, err := prompts.Get(promptFile, promptKey)
	if err != nil {
		return nil, &ModelCallError{Message: "loading prompt", Cause: err}
	}
	prompt := prompts.Format(tmpl, map[string]string{"RawText": rawText})

	response, err := p.client.GenerateJSON(ctx, prompt, p.tier)
	if err != nil {
		return nil, &ModelCallError{Message: "generating content", Cause: err}
	}

	jsonText := llm.ExtractJSONObject(llm.CleanJSONBlock(response))
	if jsonText == "" {
		return nil, &ResponseFormatError{Message: "no JSON object in response"}
	}

	data := types.NewParsedCVData()
	if err := json.Unmarshal([]byte(jsonText), data); err != nil {
		return nil, &ResponseFormatError{Message: "decoding response JSON", Cause: err}
	}

	data.RawText = rawText
	normalizeCollections(data)
	if data.Confidence <= 0 || data.Confidence > 1 {
		data.Confidence = 0.85
	}
	return data, nil
}

// ParseWithFallback attempts the model path and silently degrades to the
// regex parser on any failure. It never returns an error.
func (p *Parser) ParseWithFallback(ctx context.Context, rawText string) *types.ParsedCVData {
	if p != nil && p.client != nil {
		if data, err := p.ParseWithAI(ctx, rawText); err == nil {
			return data
		}
	}
	return ParseWithRegex(rawText)
}

// normalizeCollections replaces nil slices left by partial model output so
// downstream JSON encoding stays shape-stable.
func normalizeCollections(data *types.ParsedCVData) {
	if data.WorkExperience == nil {
		data.WorkExperience = []types.WorkExperience{}
	}
	if data.Education == nil {
		data.Education = []types.Education{}
	}
	if data.Certifications == nil {
		data.Certifications = []types.Certification{}
	}
	if data.Projects == nil {
		data.Projects = []types.Project{}
	}
	if data.Awards == nil {
		data.Awards = []types.Award{}
	}
	if data.Publications == nil {
		data.Publications = []types.Publication{}
	}
	if data.Errors == nil {
		data.Errors = []string{}
	}
	if data.Skills.Technical == nil {
		data.Skills.Technical = []string{}
	}
	if data.Skills.Design == nil {
		data.Skills.Design = []string{}
	}
	if data.Skills.Soft == nil {
		data.Skills.Soft = []string{}
	}
	if data.Skills.Tools == nil {
		data.Skills.Tools = []string{}
	}
	if data.Skills.Languages == nil {
		data.Skills.Languages = []types.Language{}
	}
}
