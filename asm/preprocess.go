package asm

import (
	"strings"
	"unicode"
)

// Line is a single preprocessed source line.
type Line struct {
	Label string // Label defined on the line, or empty.
	Text  string // Instruction text, or empty.
}

// Empty returns true if the line carries no instruction.
func (ln Line) Empty() bool {
	return len(ln.Text) == 0
}

// StripComment removes a trailing '//' or ';' comment. Parenthesized
// expressions are never cut, so '$(A // 2)' survives.
func StripComment(text string) string {
	end := len(text)
	topLevel(text, func(n int, c byte) bool {
		if c == ';' || (c == '/' && strings.HasPrefix(text[n:], "//")) {
			end = n
			return false
		}
		return true
	})
	return text[:end]
}

// topLevel calls fn for each byte outside of parentheses, stopping when fn
// returns false.
func topLevel(text string, fn func(n int, c byte) bool) {
	depth := 0
	for n := 0; n < len(text); n++ {
		c := text[n]
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case depth == 0:
			if !fn(n, c) {
				return
			}
		}
	}
}

// Preprocess strips comments, splits off an optional 'label:' prefix, and
// turns comma operand separators into spaces.
func Preprocess(raw string) (ln Line) {
	text := strings.TrimSpace(StripComment(raw))

	colon := -1
	topLevel(text, func(n int, c byte) bool {
		if c == ':' {
			colon = n
			return false
		}
		return true
	})
	if colon >= 0 {
		ln.Label = strings.TrimSpace(text[:colon])
		text = text[colon+1:]
	}

	normal := []byte(text)
	topLevel(text, func(n int, c byte) bool {
		if c == ',' {
			normal[n] = ' '
		}
		return true
	})
	ln.Text = strings.TrimSpace(string(normal))

	return
}

// Words splits instruction text on whitespace outside of parentheses.
func Words(text string) (words []string) {
	start := -1
	depth := 0
	for n, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && unicode.IsSpace(r):
			if start >= 0 {
				words = append(words, text[start:n])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = n
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}

	return
}
