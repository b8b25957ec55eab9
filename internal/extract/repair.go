package extract

import "strings"

type frame struct {
	open      byte
	expectKey bool
}

// completePrefix turns a prefix of a JSON document into a valid document by
// dropping any trailing incomplete key or literal and closing open strings,
// objects, and arrays. An open string value is kept and closed so partial
// text surfaces while it streams. ok is false when no value has started.
func completePrefix(s string) (string, bool) {
	var (
		stack     []frame
		safe      = -1
		safeStack []frame

		inString    bool
		stringIsKey bool
		escapeAt    = -1
	)

	markSafe := func(end int) {
		safe = end
		safeStack = append(safeStack[:0], stack...)
	}
	valueDone := func(end int) {
		if n := len(stack); n > 0 && stack[n-1].open == '{' {
			stack[n-1].expectKey = false
		}
		markSafe(end)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escapeAt >= 0:
				// \uXXXX spans five bytes after the backslash.
				if s[escapeAt+1] != 'u' || i-escapeAt == 5 {
					escapeAt = -1
				}
			case c == '\\':
				escapeAt = i
			case c == '"':
				inString = false
				if stringIsKey {
					stack[len(stack)-1].expectKey = false
				} else {
					valueDone(i + 1)
				}
			}
			continue
		}

		switch c {
		case ' ', '\t', '\n', '\r', ':':
		case ',':
			if n := len(stack); n > 0 && stack[n-1].open == '{' {
				stack[n-1].expectKey = true
			}
		case '{':
			stack = append(stack, frame{open: '{', expectKey: true})
			markSafe(i + 1)
		case '[':
			stack = append(stack, frame{open: '['})
			markSafe(i + 1)
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			stack = stack[:len(stack)-1]
			valueDone(i + 1)
		case '"':
			inString = true
			n := len(stack)
			stringIsKey = n > 0 && stack[n-1].open == '{' && stack[n-1].expectKey
		default:
			j := i
			for j < len(s) && !strings.ContainsRune(" \t\n\r,}]:", rune(s[j])) {
				j++
			}
			if j == len(s) {
				// A literal running to the end of input may still be growing.
				i = j
				continue
			}
			valueDone(j)
			i = j - 1
		}
	}

	if inString && !stringIsKey {
		body := s
		if escapeAt >= 0 {
			body = s[:escapeAt]
		}
		return body + `"` + closers(stack), true
	}
	if safe < 0 {
		return "", false
	}
	return s[:safe] + closers(safeStack), true
}

func closers(stack []frame) string {
	var b strings.Builder
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].open == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}
