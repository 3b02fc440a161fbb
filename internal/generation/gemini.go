package generation

import (
	"context"
	goerrors "errors"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/game"
	"github.com/zhubert/thisorthat/internal/logger"
)

// DefaultModel is the Gemini model used when config doesn't name one.
const DefaultModel = "gemini-2.0-flash-001"

// DefaultTemperature biases toward novelty across repeated calls for the
// same category.
const DefaultTemperature = float32(0.9)

// pairSchema constrains the response to an array of exactly two strings.
var pairSchema = &genai.Schema{
	Type:     genai.TypeArray,
	MinItems: genai.Ptr[int64](2),
	MaxItems: genai.Ptr[int64](2),
	Items: &genai.Schema{
		Type: genai.TypeString,
	},
}

// GeminiGenerator implements Generator using Google's Gemini API with
// structured JSON output. Model and temperature can change between rounds
// via the setters; the mutex keeps that safe against a request in flight.
type GeminiGenerator struct {
	mu          sync.RWMutex
	model       string
	temperature float32

	log *slog.Logger

	// call performs the API request. Swapped out in tests.
	call func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// NewGeminiGenerator creates a Gemini-backed generator. The API key is
// injected here rather than read from the environment inside the client, so
// callers stay in charge of configuration and tests can use a fake key.
// A missing key is a configuration error; no request is ever attempted.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, temperature float32) (*GeminiGenerator, error) {
	const op = errors.Op("generation.NewGeminiGenerator")

	if apiKey == "" {
		return nil, errors.E(op, errors.KindConfig, "missing API key")
	}
	if model == "" {
		model = DefaultModel
	}
	if temperature < 0 || temperature > 1 {
		temperature = DefaultTemperature
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.E(op, errors.KindConfig, "failed to create client", err)
	}

	g := &GeminiGenerator{
		model:       model,
		temperature: temperature,
		log:         logger.ComponentLogger("Generation"),
	}
	g.call = func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		reqModel, reqTemperature := g.settings()
		return client.Models.GenerateContent(ctx, reqModel, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature:      genai.Ptr(reqTemperature),
			ResponseMIMEType: "application/json",
			ResponseSchema:   pairSchema,
		})
	}

	g.log.Info("Client created", "model", model, "temperature", temperature)
	return g, nil
}

// SetModel routes later requests to a different model. An empty name falls
// back to DefaultModel. Takes effect on the next call, not one in flight.
func (g *GeminiGenerator) SetModel(model string) {
	if model == "" {
		model = DefaultModel
	}
	g.mu.Lock()
	g.model = model
	g.mu.Unlock()
	g.log.Info("Model changed", "model", model)
}

// SetTemperature changes the sampling temperature for later requests, with
// the same out-of-range fallback as at construction.
func (g *GeminiGenerator) SetTemperature(temperature float32) {
	if temperature < 0 || temperature > 1 {
		temperature = DefaultTemperature
	}
	g.mu.Lock()
	g.temperature = temperature
	g.mu.Unlock()
	g.log.Info("Temperature changed", "temperature", temperature)
}

// settings returns the model and temperature for the next request.
func (g *GeminiGenerator) settings() (string, float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.model, g.temperature
}

// Generate performs exactly one request for the category and validates the
// response down to two non-empty strings. No retry, no backoff.
func (g *GeminiGenerator) Generate(ctx context.Context, category game.Category) (game.OptionPair, error) {
	const op = errors.Op("generation.Generate")

	if !category.Valid() {
		return game.OptionPair{}, errors.E(op, errors.KindInvalid, "unknown category: "+string(category))
	}

	g.log.Debug("Requesting pair", "category", string(category))

	resp, err := g.call(ctx, buildPrompt(category))
	if err != nil {
		var apiErr genai.APIError
		if goerrors.As(err, &apiErr) {
			// Non-2xx from the service; the body is surfaced through the
			// APIError message.
			g.log.Error("API returned error status", "code", apiErr.Code, "status", apiErr.Status)
			return game.OptionPair{}, errors.E(op, errors.KindHTTP, err)
		}
		g.log.Error("Request failed", "error", err)
		return game.OptionPair{}, errors.E(op, errors.KindNetwork, err)
	}

	pair, err := pairFromResponse(resp)
	if err != nil {
		g.log.Error("Response failed validation", "error", err)
		return game.OptionPair{}, err
	}

	g.log.Debug("Pair generated", "category", string(category),
		"first_len", len(pair.First), "second_len", len(pair.Second))
	return pair, nil
}
