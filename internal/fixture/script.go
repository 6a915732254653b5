package fixture

import "strings"

// splitStatements splits a SQL script on top-level semicolons.
// Comments are dropped; quoted strings, quoted identifiers and
// dollar-quoted bodies are kept intact.
func splitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		c := script[i]

		switch {
		case c == '-' && strings.HasPrefix(script[i:], "--"):
			end := strings.IndexByte(script[i:], '\n')
			if end < 0 {
				i = len(script)
				continue
			}
			i += end
			current.WriteByte('\n')

		case c == '/' && strings.HasPrefix(script[i:], "/*"):
			end := strings.Index(script[i+2:], "*/")
			if end < 0 {
				i = len(script)
				continue
			}
			i += end + 3
			current.WriteByte(' ')

		case c == '\'' || c == '"':
			end := closingQuote(script, i, c, c == '\'' && escapeStringPrefix(script, i))
			current.WriteString(script[i:end])
			i = end - 1

		case c == '$':
			tag, ok := dollarTag(script[i:])
			if !ok {
				current.WriteByte(c)
				continue
			}
			end := strings.Index(script[i+len(tag):], tag)
			if end < 0 {
				current.WriteString(script[i:])
				i = len(script)
				continue
			}
			stop := i + len(tag) + end + len(tag)
			current.WriteString(script[i:stop])
			i = stop - 1

		case c == ';':
			flush()

		default:
			current.WriteByte(c)
		}
	}
	flush()

	return statements
}

// closingQuote returns the index just past the quote closing the one at start.
// A doubled quote character is an escaped quote; with backslashEscapes a
// backslash also escapes the byte after it.
func closingQuote(script string, start int, quote byte, backslashEscapes bool) int {
	for i := start + 1; i < len(script); i++ {
		if backslashEscapes && script[i] == '\\' {
			i++
			continue
		}
		if script[i] != quote {
			continue
		}
		if i+1 < len(script) && script[i+1] == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(script)
}

// escapeStringPrefix reports whether the quote at i opens an E'...' literal
func escapeStringPrefix(script string, i int) bool {
	if i == 0 || (script[i-1] != 'E' && script[i-1] != 'e') {
		return false
	}
	return i == 1 || !isIdentByte(script[i-2])
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// dollarTag returns the $tag$ opening s, if any
func dollarTag(s string) (string, bool) {
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '$' {
			return s[:i+1], true
		}
		isIdent := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 1 && c >= '0' && c <= '9')
		if !isIdent {
			return "", false
		}
	}
	return "", false
}
