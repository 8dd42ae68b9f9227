package leads

import "errors"

var ErrNoJSONObject = errors.New("no JSON object found in text")

// ExtractJSONObject returns the first balanced-brace substring of s.
// The generation service is asked for bare JSON but sometimes wraps the
// object in prose or code fences, so the scan tolerates surrounding text.
// Braces inside JSON strings (including escaped quotes) are ignored.
func ExtractJSONObject(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if start == -1 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONObject
}
