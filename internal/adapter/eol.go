package adapter

import "strings"

// The plain-text format is line-oriented, so line breaks inside entry texts
// are written as visible escape codes and restored on import.

// escapeEOL rewrites line breaks as <cf> (\r\n), <lf> (\n) and <cr> (\r).
func escapeEOL(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				b.WriteString("<cf>")
				i++
			} else {
				b.WriteString("<cr>")
			}
		case '\n':
			b.WriteString("<lf>")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// unescapeEOL reverses escapeEOL. Unrecognised <..> sequences pass through
// untouched.
func unescapeEOL(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && i+3 < len(s) && s[i+3] == '>' {
			switch s[i+1 : i+3] {
			case "cf":
				b.WriteString("\r\n")
				i += 3
				continue
			case "lf":
				b.WriteByte('\n')
				i += 3
				continue
			case "cr":
				b.WriteByte('\r')
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
