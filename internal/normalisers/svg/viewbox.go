package svg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// attrPair matches one key="value" or key='value' pair inside a start tag.
var attrPair = regexp.MustCompile(`([A-Za-z_:][A-Za-z0-9_:.\-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// nonNumeric strips everything but digits, '.' and '-' from a declared
// dimension (units like "200px" or "12.5mm" are common).
var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseAttributes extracts the attribute pairs declared in a start tag.
// Attribute order is irrelevant; a duplicated key keeps its last value.
func ParseAttributes(startTag string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPair.FindAllStringSubmatch(startTag, -1) {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		attrs[m[1]] = value
	}
	return attrs
}

// ResolveViewBox determines the coordinate frame declared by a start
// tag. An explicit viewBox attribute is returned verbatim, without
// numeric validation. Otherwise a frame is synthesized from declared
// width and height; failing both, resolution fails with
// domain.ErrNoViewBox.
func ResolveViewBox(startTag string) (string, error) {
	attrs := ParseAttributes(startTag)

	if vb := attrs["viewBox"]; strings.TrimSpace(vb) != "" {
		return vb, nil
	}

	width := nonNumeric.ReplaceAllString(attrs["width"], "")
	height := nonNumeric.ReplaceAllString(attrs["height"], "")
	if width != "" && height != "" {
		return fmt.Sprintf("0 0 %s %s", width, height), nil
	}

	return "", domain.ErrNoViewBox
}
