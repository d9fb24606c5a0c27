package render

import (
	"regexp"
	"strings"
)

type segmentKind int

const (
	segText segmentKind = iota
	segRole
	segUser
	segEveryone
	segHere
)

// segment is one parsed run of a layout line: plain text or a recognized
// placeholder. raw always holds the original span so malformed
// placeholders can be drawn verbatim.
type segment struct {
	kind segmentKind
	raw  string
	id   string
	name string
}

var placeholderPattern = regexp.MustCompile(`\{\{.*?\}\}`)

// splitSegments splits a line on placeholder boundaries, preserving the
// plain text between them.
func splitSegments(line string) []segment {
	var segs []segment
	last := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			segs = append(segs, segment{kind: segText, raw: line[last:loc[0]]})
		}
		segs = append(segs, parsePlaceholder(line[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(line) {
		segs = append(segs, segment{kind: segText, raw: line[last:]})
	}
	return segs
}

// parsePlaceholder turns one {{...}} span into a tagged segment. A span
// that does not match the known grammar stays plain text.
func parsePlaceholder(tok string) segment {
	body := strings.Trim(tok, "{}")
	switch {
	case body == "EVERYONE":
		return segment{kind: segEveryone, raw: tok}
	case body == "HERE":
		return segment{kind: segHere, raw: tok}
	case strings.HasPrefix(body, "ROLE:"):
		if parts := strings.SplitN(body, ":", 3); len(parts) == 3 {
			return segment{kind: segRole, raw: tok, id: parts[1], name: parts[2]}
		}
	case strings.HasPrefix(body, "USER:"):
		if parts := strings.SplitN(body, ":", 3); len(parts) == 3 {
			return segment{kind: segUser, raw: tok, id: parts[1], name: parts[2]}
		}
	}
	return segment{kind: segText, raw: tok}
}
