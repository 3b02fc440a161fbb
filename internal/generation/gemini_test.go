package generation

import (
	"context"
	goerrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/game"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubGenerator returns a GeminiGenerator whose API call is replaced with the
// given function. Construction goes around NewGeminiGenerator so tests never
// need a real client.
func stubGenerator(call func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)) *GeminiGenerator {
	return &GeminiGenerator{
		model:       DefaultModel,
		temperature: DefaultTemperature,
		log:         discardLogger(),
		call:        call,
	}
}

func TestNewGeminiGenerator_MissingKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", DefaultModel, DefaultTemperature)
	if err == nil {
		t.Fatal("expected an error for a missing API key")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotPrompt string
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		gotPrompt = prompt
		return responseWithText(`["Fly", "Turn invisible"]`), nil
	})

	pair, err := g.Generate(context.Background(), game.CategorySuperpowers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.First != "Fly" || pair.Second != "Turn invisible" {
		t.Errorf("pair = %+v", pair)
	}
	if gotPrompt == "" {
		t.Fatal("prompt was not built")
	}
	for _, want := range []string{string(game.CategorySuperpowers), "exactly two", "mutually exclusive"} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("prompt missing %q: %s", want, gotPrompt)
		}
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	called := false
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		called = true
		return responseWithText(`["a", "b"]`), nil
	})

	_, err := g.Generate(context.Background(), game.Category("Sports"))
	if err == nil {
		t.Fatal("expected an error for an unknown category")
	}
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
	}
	if called {
		t.Error("no request should be made for an invalid category")
	}
}

func TestGenerate_NetworkError(t *testing.T) {
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		return nil, goerrors.New("dial tcp: i/o timeout")
	})

	_, err := g.Generate(context.Background(), game.CategoryAnimals)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errors.KindNetwork) {
		t.Errorf("error kind = %v, want KindNetwork", errors.GetKind(err))
	}
}

func TestGenerate_HTTPStatusError(t *testing.T) {
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		return nil, genai.APIError{Code: 403, Status: "PERMISSION_DENIED", Message: "API key not valid"}
	})

	_, err := g.Generate(context.Background(), game.CategoryAnimals)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errors.KindHTTP) {
		t.Errorf("error kind = %v, want KindHTTP", errors.GetKind(err))
	}
	// The status and body must be surfaced, not swallowed.
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("error should carry the response body: %v", err)
	}
}

func TestSetModelAndTemperature(t *testing.T) {
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		return responseWithText(`["a", "b"]`), nil
	})

	g.SetModel("gemini-2.5-pro")
	g.SetTemperature(0.2)

	model, temp := g.settings()
	if model != "gemini-2.5-pro" {
		t.Errorf("model = %q, want the new model", model)
	}
	if temp != 0.2 {
		t.Errorf("temperature = %v, want 0.2", temp)
	}

	// Empty and out-of-range values fall back to the defaults.
	g.SetModel("")
	g.SetTemperature(1.5)

	model, temp = g.settings()
	if model != DefaultModel {
		t.Errorf("model = %q, want %q", model, DefaultModel)
	}
	if temp != DefaultTemperature {
		t.Errorf("temperature = %v, want %v", temp, DefaultTemperature)
	}
}

func TestGenerate_SchemaErrorSingleAttempt(t *testing.T) {
	calls := 0
	g := stubGenerator(func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		calls++
		return responseWithText(`["a", "b", "c"]`), nil
	})

	_, err := g.Generate(context.Background(), game.CategoryAnimals)
	if !errors.Is(err, errors.KindSchema) {
		t.Errorf("error kind = %v, want KindSchema", errors.GetKind(err))
	}
	if calls != 1 {
		t.Errorf("exactly one attempt expected, got %d", calls)
	}
}
