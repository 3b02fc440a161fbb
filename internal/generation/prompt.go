package generation

import (
	"fmt"

	"github.com/zhubert/thisorthat/internal/game"
)

// buildPrompt returns the instruction sent to the model for a category. The
// wording pushes for mutually exclusive, maximally distinct phrases and
// explicitly forbids near-duplicate wording between the two, since the model
// otherwise tends to echo the same noun phrase on both sides.
func buildPrompt(category game.Category) string {
	return fmt.Sprintf(
		`Generate a "this or that" dilemma for the category %q. `+
			`Respond with a JSON array of exactly two short phrases. `+
			`The two phrases must be mutually exclusive, maximally distinct choices `+
			`that force a genuinely hard decision. `+
			`Do not repeat or nearly repeat wording between the two phrases. `+
			`Keep each phrase under ten words. No explanations, just the two options.`,
		string(category),
	)
}
