package render

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// wrapLines greedily wraps body text against maxWidth and returns the
// lines to draw, in order. Explicit newlines always start a new line. A
// single word wider than maxWidth is split into the longest character
// runs that fit; words containing placeholder tokens are exempt from that
// splitting and may overflow their line instead.
//
// Committed words keep a trailing space, so a line's rendered width can
// exceed the width its fit was measured at by one trimmed space.
func wrapLines(text string, maxWidth int, face font.Face) []string {
	if text == "" {
		return nil
	}

	max := fixed.I(maxWidth)
	var out []string
	for _, explicit := range strings.Split(text, "\n") {
		cur := ""
		for _, word := range strings.Split(explicit, " ") {
			if measure(face, word) > max && !strings.Contains(word, "{{") {
				if cur != "" {
					out = append(out, cur)
					cur = ""
				}
				chunk := ""
				for _, ch := range word {
					if measure(face, chunk+string(ch)) <= max {
						chunk += string(ch)
					} else {
						out = append(out, chunk)
						chunk = string(ch)
					}
				}
				if chunk != "" {
					cur = chunk + " "
				}
				continue
			}

			test := strings.TrimRightFunc(cur+word+" ", unicode.IsSpace)
			if measure(face, test) <= max {
				cur = test + " "
			} else {
				if cur != "" {
					out = append(out, cur)
				}
				cur = word + " "
			}
		}
		if cur != "" {
			out = append(out, cur)
		}
	}
	return out
}
