package vcard

import (
	"strings"
	"unicode/utf8"
)

// escaper backslash-escapes the characters that terminate or separate vCard
// values. It runs on every scalar component before the component is placed
// into a structured value.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\n", `\n`,
)

func escapeValue(value string) string {
	return escaper.Replace(value)
}

// foldLimit is the maximum octet count of one physical line. Multi-byte
// UTF-8 sequences count by encoded length and are never split.
const foldLimit = 75

// foldLine folds an overlong logical line into physical lines joined by a
// newline plus one leading space. The leading space counts against the
// continuation line's budget.
func foldLine(line string) string {
	if len(line) <= foldLimit {
		return line
	}

	var b strings.Builder
	b.Grow(len(line) + len(line)/foldLimit*2)

	used := 0
	for i := 0; i < len(line); {
		_, size := utf8.DecodeRuneInString(line[i:])
		if used+size > foldLimit {
			b.WriteString("\n ")
			used = 1
		}
		b.WriteString(line[i : i+size])
		used += size
		i += size
	}
	return b.String()
}
