package htmltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/courier/pkg/htmltext"
)

func TestStrip_Tags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text passes through", "hello world", "hello world"},
		{"simple tags removed", "<p>hello</p>", "hello"},
		{"nested markup", "<div><strong>Hi</strong> there</div>", "Hi there"},
		{"attributes discarded", `<a href="https://example.com">link</a>`, "link"},
		{"unclosed tag swallows rest", "before<p after", "before"},
		{"stray closing bracket consumed", "a > b", "a  b"},
		{"empty input", "", ""},
		{"tag spanning lines", "<p\nclass=\"x\">body</p>", "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmltext.Strip(tt.in))
		})
	}
}

func TestStrip_Entities(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", htmltext.Strip("a&nbsp;b"))
	assert.Equal(t, "Tom & Jerry", htmltext.Strip("Tom &amp; Jerry"))
	assert.Equal(t, "1 < 2", htmltext.Strip("1 &lt; 2"))
	assert.Equal(t, "2 > 1", htmltext.Strip("2 &gt; 1"))
}

// Output of one substitution must not be re-scanned: &amp; yields a literal
// ampersand that never combines with the following "lt;".
func TestStrip_SinglePassSubstitution(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;", htmltext.Strip("&amp;lt;"))
	assert.Equal(t, "&gt;", htmltext.Strip("&amp;gt;"))
	assert.Equal(t, "&nbsp;", htmltext.Strip("&amp;nbsp;"))
}

func TestStrip_IdempotentOnPlainText(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"hello world",
		"line one\nline two",
		"unicode: héllo ✉",
		"",
	}
	for _, s := range inputs {
		once := htmltext.Strip(s)
		assert.Equal(t, once, htmltext.Strip(once), "input %q", s)
	}
}

func TestStrip_MalformedMarkupDoesNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_ = htmltext.Strip("<<><>>><p><")
		_ = htmltext.Strip(`<img alt="a > b">after`)
	})
	// '>' inside a quoted attribute ends the tag early, and the closing '>'
	// is then consumed as a bare bracket. Degraded output, by contract.
	assert.Equal(t, ` b"after`, htmltext.Strip(`<img alt="a > b">after`))
}
