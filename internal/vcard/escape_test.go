package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		extra int // characters gaining a backslash
	}{
		{"plain", "Forrest Gump", "Forrest Gump", 0},
		{"comma", "Shrimp, fishing", `Shrimp\, fishing`, 1},
		{"semicolon", "a;b", `a\;b`, 1},
		{"backslash", `a\b`, `a\\b`, 1},
		{"newline", "line one\nline two", `line one\nline two`, 1},
		{"all at once", "a,b;c\\d\ne", `a\,b\;c\\d\ne`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escapeValue(tt.in)
			assert.Equal(t, tt.want, got)
			// Escaping is length-additive: one extra byte per escaped char.
			assert.Equal(t, len(tt.in)+tt.extra, len(got))
			assert.LessOrEqual(t, len(got), len(tt.in)*2)
		})
	}
}

func TestEscapeValue_NoUnescapedSpecials(t *testing.T) {
	got := escapeValue("a,b;c\\d\ne,f;g")
	for i := 0; i < len(got); i++ {
		switch got[i] {
		case ',', ';':
			require.Greater(t, i, 0)
			assert.Equal(t, byte('\\'), got[i-1], "unescaped %q at %d in %q", got[i], i, got)
		case '\n':
			t.Fatalf("literal newline survived escaping in %q", got)
		}
	}
}

func TestFoldLine_ShortLineUntouched(t *testing.T) {
	line := "FN:Forrest Gump"
	assert.Equal(t, line, foldLine(line))
}

func TestFoldLine_Limits(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"ascii", "NOTE:" + strings.Repeat("abcdefghij", 30)},
		{"exactly at limit", strings.Repeat("x", 75)},
		{"one past limit", strings.Repeat("x", 76)},
		{"multibyte", "NOTE:" + strings.Repeat("héllo wörld ", 20)},
		{"wide runes", "NOTE:" + strings.Repeat("日本語", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := foldLine(tt.line)

			for _, physical := range strings.Split(folded, "\n") {
				assert.LessOrEqual(t, len(physical), 75, "physical line over 75 octets: %q", physical)
			}

			// Unfolding (drop each continuation's single leading space)
			// reproduces the original line exactly.
			unfolded := strings.ReplaceAll(folded, "\n ", "")
			assert.Equal(t, tt.line, unfolded)
		})
	}
}

func TestFoldLine_NeverSplitsMultibyteSequence(t *testing.T) {
	// 74 ASCII bytes then a 2-byte rune: the rune must move to the
	// continuation line in one piece.
	line := strings.Repeat("a", 74) + "é"
	folded := foldLine(line)

	parts := strings.Split(folded, "\n")
	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 74), parts[0])
	assert.Equal(t, " é", parts[1])
}
