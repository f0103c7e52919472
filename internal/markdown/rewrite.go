package markdown

import "strings"

// RewriteTargetFunc maps a raw link target to its replacement. Returning the
// input unchanged leaves the link untouched.
type RewriteTargetFunc func(target string, isImage bool) string

// RewriteLinks rewrites the targets of inline links `[text](target)` and
// images `![alt](target)` in content.
//
// The scanner is iterative instead of regex-based to avoid catastrophic
// backtracking on adversarial input; everything that is not a well-formed
// inline link passes through untouched.
func RewriteLinks(content string, rewrite RewriteTargetFunc) string {
	var result strings.Builder
	result.Grow(len(content))

	i := 0
	for i < len(content) {
		if content[i] == '[' {
			if newI, processed := tryRewriteLink(content, i, rewrite, &result); processed {
				i = newI
				continue
			}
		}

		result.WriteByte(content[i])
		i++
	}

	return result.String()
}

// tryRewriteLink attempts to process a markdown link starting at the `[` at
// position i. Returns the new position and whether a link was consumed.
func tryRewriteLink(content string, i int, rewrite RewriteTargetFunc, result *strings.Builder) (int, bool) {
	isImage := i > 0 && content[i-1] == '!'

	closeBracket := findClosingBracket(content, i+1)
	if closeBracket == -1 {
		return 0, false
	}

	// Only `](` makes this an inline link; `[text]` alone passes through.
	if closeBracket+1 >= len(content) || content[closeBracket+1] != '(' {
		result.WriteString(content[i : closeBracket+1])
		return closeBracket + 1, true
	}

	closeParen := findClosingParen(content, closeBracket+2)
	if closeParen == -1 {
		result.WriteString(content[i : closeBracket+2])
		return closeBracket + 2, true
	}

	text := content[i+1 : closeBracket]
	target := content[closeBracket+2 : closeParen]

	result.WriteByte('[')
	result.WriteString(text)
	result.WriteString("](")
	result.WriteString(rewrite(target, isImage))
	result.WriteByte(')')
	return closeParen + 1, true
}

// findClosingBracket finds the next ] character, giving up at a blank line.
func findClosingBracket(content string, start int) int {
	for i := start; i < len(content); i++ {
		if content[i] == ']' {
			return i
		}
		// Link text may wrap one line but never spans paragraphs.
		if content[i] == '\n' && i+1 < len(content) && content[i+1] == '\n' {
			return -1
		}
	}
	return -1
}

// findClosingParen finds the next ) character; targets never contain
// newlines or spaces. A quoted title after the target, `(page.md "Title")`,
// therefore makes the whole link pass through unrewritten.
func findClosingParen(content string, start int) int {
	for i := start; i < len(content); i++ {
		switch content[i] {
		case ')':
			return i
		case '\n', ' ':
			return -1
		}
	}
	return -1
}
