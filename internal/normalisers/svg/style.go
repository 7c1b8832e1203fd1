package svg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

var (
	// colorAttr matches a literal fill="..." or stroke="..." attribute,
	// in either quote style, including the leading whitespace.
	colorAttr = regexp.MustCompile(`(?i)\s+(?:fill|stroke)\s*=\s*(?:"[^"]*"|'[^']*')`)

	// styleAttr matches an inline style="..." attribute so its
	// declarations can be filtered individually.
	styleAttr = regexp.MustCompile(`(?i)(\s+style\s*=\s*)(?:"([^"]*)"|'([^']*)')`)
)

// StripColors removes every explicit fill/stroke declaration from the
// markup: the attribute forms and the fill:/stroke: declarations
// embedded in inline style attributes. Other style declarations in the
// same attribute are preserved.
func StripColors(markup string) string {
	markup = colorAttr.ReplaceAllString(markup, "")

	return styleAttr.ReplaceAllStringFunc(markup, func(attr string) string {
		m := styleAttr.FindStringSubmatch(attr)
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		kept := filterDeclarations(value)
		if kept == "" {
			// Nothing left: drop the attribute entirely.
			return ""
		}
		return fmt.Sprintf(`%s"%s"`, m[1], kept)
	})
}

// filterDeclarations drops fill/stroke declarations from a style value.
func filterDeclarations(value string) string {
	var kept []string
	for _, decl := range strings.Split(value, ";") {
		trimmed := strings.TrimSpace(decl)
		if trimmed == "" {
			continue
		}
		prop := trimmed
		if i := strings.IndexByte(trimmed, ':'); i >= 0 {
			prop = trimmed[:i]
		}
		switch strings.ToLower(strings.TrimSpace(prop)) {
		case "fill", "stroke":
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, ";")
}

// ApplyStyle runs the style-normalisation step: optional stripping of
// explicit colors followed by recolor wrapping.
//
// tintReady wraps the markup in one group whose fill and stroke are
// currentColor, so a consuming renderer recolors the whole emblem by
// setting that group's color. mono hard-sets a literal color instead.
// keep without strip returns the markup unchanged.
func ApplyStyle(markup string, mode domain.RecolorMode, strip bool) string {
	if strip {
		markup = StripColors(markup)
	}

	switch mode.Kind {
	case domain.RecolorTintReady:
		return fmt.Sprintf(`<g fill="currentColor" stroke="currentColor">%s</g>`, markup)
	case domain.RecolorMono:
		return fmt.Sprintf(`<g fill="%s" stroke="%s">%s</g>`, mode.Color, mode.Color, markup)
	default:
		return markup
	}
}
