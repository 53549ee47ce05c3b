package commands

import "strings"

// formatList renders words as `{ "a", "b" }`, or `{ }` when empty.
func formatList(words []string) string {
	if len(words) == 0 {
		return "{ }"
	}

	var b strings.Builder
	b.WriteString("{ ")
	for i, w := range words {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(w)
		b.WriteByte('"')
	}
	b.WriteString(" }")
	return b.String()
}

// labelled prefixes a rendered value with its label.
func labelled(label, value string) string {
	return label + ": " + value
}
