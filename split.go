package polifin

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitWords splits an answers-file line into words. Double quotes group
// words, a backslash escapes the next character inside quotes and a
// semicolon outside quotes starts a comment.
func splitWords(s string) ([]string, error) {
	sc := bufio.NewScanner(strings.NewReader(stripComment(s)))
	sc.Split(scanWords)
	var res []string
	for sc.Scan() {
		word, err := strconv.Unquote(`"` + sc.Text() + `"`)
		if err != nil {
			word = sc.Text()
		}
		res = append(res, word)
	}
	return res, sc.Err()
}

func stripComment(s string) string {
	inQuote, inEscape := false, false
	for i, r := range s {
		switch {
		case inEscape:
			inEscape = false
		case inQuote && r == '\\':
			inEscape = true
		case r == '"':
			inQuote = !inQuote
		case !inQuote && r == ';':
			return s[:i]
		}
	}
	return s
}

func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip leading spaces.
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSpace(r) {
			break
		}
	}
	if start == len(data) {
		return start, nil, nil
	}
	wordStart := start

	inQuote := false
	if r, width := utf8.DecodeRune(data[start:]); r == '"' {
		start += width
		inQuote = true
	}

	// Scan until space or closing quote, marking end of word.
	inEscape := false
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		switch {
		case inEscape:
			inEscape = false
		case inQuote && r == '\\':
			inEscape = true
		case inQuote && r == '"':
			return i + width, data[start:i], nil
		case !inQuote && isSpace(r):
			return i + width, data[start:i], nil
		}
	}

	if atEOF {
		if inQuote {
			return 0, nil, errUnterminatedQuote
		}
		return len(data), data[start:], nil
	}

	// Request more data, keeping the partial word.
	return wordStart, nil, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r':
		return true
	default:
		return false
	}
}
