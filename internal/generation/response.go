package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/game"
)

// pairFromResponse validates the response envelope and parses the first
// candidate's text into an option pair. Any deviation from "a JSON array of
// exactly two non-empty strings" is a schema error, not a crash.
func pairFromResponse(resp *genai.GenerateContentResponse) (game.OptionPair, error) {
	const op = errors.Op("generation.pairFromResponse")

	if resp == nil || len(resp.Candidates) == 0 {
		return game.OptionPair{}, errors.E(op, errors.KindSchema, "no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return game.OptionPair{}, errors.E(op, errors.KindSchema, "empty content in first candidate")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	return parsePair(text.String())
}

// parsePair decodes the structured payload: a two-element array of non-empty
// strings, order preserved as (first, second).
func parsePair(raw string) (game.OptionPair, error) {
	const op = errors.Op("generation.parsePair")

	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return game.OptionPair{}, errors.E(op, errors.KindSchema, "payload is not a JSON string array", err)
	}

	if len(options) != 2 {
		return game.OptionPair{}, errors.E(op, errors.KindSchema,
			fmt.Sprintf("expected exactly two options, got %d", len(options)))
	}

	first := strings.TrimSpace(options[0])
	second := strings.TrimSpace(options[1])
	if first == "" || second == "" {
		return game.OptionPair{}, errors.E(op, errors.KindSchema, "option text is empty")
	}

	return game.OptionPair{First: first, Second: second}, nil
}
