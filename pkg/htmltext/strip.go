// Package htmltext derives plaintext alternatives from rendered HTML email
// bodies. It is a best-effort degrade path for text-only mail clients, not an
// HTML parser: malformed markup produces degraded but usable output.
package htmltext

import "strings"

// entityReplacer substitutes the small entity set that shows up in email
// markup. strings.Replacer performs a single left-to-right pass, so output
// produced by one substitution is never re-scanned (e.g. "&amp;lt;" becomes
// "&lt;", not "<").
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// Strip removes HTML tags and resolves a fixed set of entities.
//
// Tag removal is a single scan: everything between '<' and the next '>' is
// discarded, with no tag balancing and no awareness of '>' inside quoted
// attribute values. Unclosed trailing tags swallow the rest of the input.
func Strip(html string) string {
	var b strings.Builder
	b.Grow(len(html))

	inTag := false
	for _, c := range html {
		switch {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
		case !inTag:
			b.WriteRune(c)
		}
	}

	return entityReplacer.Replace(b.String())
}
