// Package generation is the boundary to the external text-generation service.
// It turns a category into exactly two contrasting short-text options, or a
// typed error. Nothing is retried or cached; novelty comes from the service's
// temperature, not client-side dedup.
package generation

import (
	"context"

	"github.com/zhubert/thisorthat/internal/game"
)

// Generator produces one "this or that" option pair for a category.
//
// Implementations perform exactly one attempt per call. On any failure
// (network, HTTP status, malformed envelope, schema violation) the returned
// error is a *errors.Error whose Kind identifies the cause; the caller
// decides how to present it.
type Generator interface {
	Generate(ctx context.Context, category game.Category) (game.OptionPair, error)
}
