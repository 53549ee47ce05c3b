package engine

import (
	"strings"

	"github.com/tungetti/pjatext/internal/command"
)

// Render formats outputs as report lines, skipping those without a message.
// Outputs that are not a success are labelled as errors.
func Render(outputs []command.Output) string {
	var b strings.Builder
	for _, out := range outputs {
		if !out.HasMessage() {
			continue
		}
		b.WriteString(out.String())
		b.WriteByte('\n')
	}
	return b.String()
}
