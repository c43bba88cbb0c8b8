package utils

import (
	"strings"
	"unicode"
)

// words splits an identifier into its lowercase word components. Both
// snake_case and camelCase inputs are understood, so already-converted
// names pass through unchanged.
func words(s string) []string {
	var ws []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			ws = append(ws, string(cur))
			cur = nil
		}
	}
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, unicode.ToLower(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return ws
}

// CamelCase converts an identifier to camelCase ("type_name" -> "typeName",
// "ModelRun" -> "modelRun").
func CamelCase(s string) string {
	var b strings.Builder
	for i, w := range words(s) {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// TitleCase converts an identifier to TitleCase ("data_rows" -> "DataRows").
func TitleCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
