// Package cleaner provides the structural cleanup passes run over raw
// vector markup ahead of fragment discovery.
//
// Each pass is a small, independent transform: stripping comments,
// doctype, processing instructions and editor-specific metadata,
// inlining stylesheet-driven presentation into direct style attributes,
// canonicalizing path data whitespace and regenerating element
// identifiers to short anonymous forms. Passes never remove or alter a
// viewBox attribute, and unknown vendor attributes are preserved.
package cleaner

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/flagforge/symbolkit/internal/core/ports/driven"
)

// Pre-compiled expressions for the cleanup passes.
var (
	comments     = regexp.MustCompile(`(?s)<!--.*?-->`)
	doctype      = regexp.MustCompile(`(?is)<!DOCTYPE[^>]*>`)
	procInst     = regexp.MustCompile(`(?s)<\?.*?\?>`)
	metadataElem = regexp.MustCompile(`(?is)<metadata\b[^>]*>.*?</metadata\s*>`)
	vendorSelf   = regexp.MustCompile(`(?is)<(?:sodipodi|inkscape):[a-z0-9_\-]+\b[^>]*/>`)
	vendorPair   = regexp.MustCompile(`(?is)<(?:sodipodi|inkscape):[a-z0-9_\-]+\b[^>]*>.*?</(?:sodipodi|inkscape):[a-z0-9_\-]+\s*>`)
	styleBlock   = regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style\s*>`)
	classRule    = regexp.MustCompile(`\.([A-Za-z_][A-Za-z0-9_\-]*)\s*\{([^}]*)\}`)
	classAttr    = regexp.MustCompile(`(?i)\s+class\s*=\s*"([^"]*)"`)
	pathData     = regexp.MustCompile(`(?i)(\sd\s*=\s*)"([^"]*)"`)
	idAttr       = regexp.MustCompile(`(?i)\s+id\s*=\s*"([^"]*)"`)
	idRef        = regexp.MustCompile(`url\(#([^)]+)\)`)
	hrefRef      = regexp.MustCompile(`((?:xlink:)?href\s*=\s*")#([^"]+)"`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// StripNoise removes comments, doctype, processing instructions,
// metadata elements and editor-namespace elements.
type StripNoise struct{}

// NewStripNoise creates the noise-stripping pass.
func NewStripNoise() *StripNoise {
	return &StripNoise{}
}

// Name implements driven.MarkupPass.
func (p *StripNoise) Name() string { return "strip_noise" }

// Apply implements driven.MarkupPass.
func (p *StripNoise) Apply(_ context.Context, markup string, _ bool) (string, error) {
	out := markup
	out = comments.ReplaceAllString(out, "")
	out = doctype.ReplaceAllString(out, "")
	out = procInst.ReplaceAllString(out, "")
	out = metadataElem.ReplaceAllString(out, "")
	out = vendorSelf.ReplaceAllString(out, "")
	out = vendorPair.ReplaceAllString(out, "")
	return out, nil
}

// InlineStylesheets moves class-based presentation from <style> blocks
// into per-element style attributes.
type InlineStylesheets struct{}

// NewInlineStylesheets creates the stylesheet-inlining pass.
func NewInlineStylesheets() *InlineStylesheets {
	return &InlineStylesheets{}
}

// Name implements driven.MarkupPass.
func (p *InlineStylesheets) Name() string { return "inline_stylesheets" }

// Apply implements driven.MarkupPass. Declarations already inline on
// the element keep precedence by being appended after the class rules.
func (p *InlineStylesheets) Apply(_ context.Context, markup string, preserveIdentifiers bool) (string, error) {
	rules := make(map[string]string)
	for _, block := range styleBlock.FindAllStringSubmatch(markup, -1) {
		for _, rule := range classRule.FindAllStringSubmatch(block[1], -1) {
			rules[rule[1]] = strings.TrimSpace(strings.Trim(rule[2], "; \t\n"))
		}
	}
	if len(rules) == 0 {
		return markup, nil
	}

	markup = styleBlock.ReplaceAllString(markup, "")

	out := classAttr.ReplaceAllStringFunc(markup, func(attr string) string {
		m := classAttr.FindStringSubmatch(attr)
		var decls []string
		var unmatched []string
		for _, class := range strings.Fields(m[1]) {
			if d, ok := rules[class]; ok {
				decls = append(decls, d)
			} else {
				unmatched = append(unmatched, class)
			}
		}
		if len(decls) == 0 {
			return attr
		}

		var b strings.Builder
		fmt.Fprintf(&b, ` style="%s"`, strings.Join(decls, ";"))
		if len(unmatched) > 0 || preserveIdentifiers {
			// Classes with no matching rule (or preserved ones) stay.
			classes := m[1]
			if !preserveIdentifiers {
				classes = strings.Join(unmatched, " ")
			}
			fmt.Fprintf(&b, ` class="%s"`, classes)
		}
		return b.String()
	})
	return out, nil
}

// CanonicalizePathData collapses whitespace runs inside d attributes.
type CanonicalizePathData struct{}

// NewCanonicalizePathData creates the path-data pass.
func NewCanonicalizePathData() *CanonicalizePathData {
	return &CanonicalizePathData{}
}

// Name implements driven.MarkupPass.
func (p *CanonicalizePathData) Name() string { return "canonical_paths" }

// Apply implements driven.MarkupPass.
func (p *CanonicalizePathData) Apply(_ context.Context, markup string, _ bool) (string, error) {
	out := pathData.ReplaceAllStringFunc(markup, func(attr string) string {
		m := pathData.FindStringSubmatch(attr)
		d := strings.TrimSpace(whitespace.ReplaceAllString(m[2], " "))
		return fmt.Sprintf(`%s"%s"`, m[1], d)
	})
	return out, nil
}

// RegenerateIdentifiers rewrites id attributes to short anonymous forms
// and fixes url(#...) and href="#..." references to match. Identifiers
// that are never declared (external references) are left alone.
type RegenerateIdentifiers struct{}

// NewRegenerateIdentifiers creates the identifier-rewriting pass.
func NewRegenerateIdentifiers() *RegenerateIdentifiers {
	return &RegenerateIdentifiers{}
}

// Name implements driven.MarkupPass.
func (p *RegenerateIdentifiers) Name() string { return "regenerate_ids" }

// Apply implements driven.MarkupPass. It is a no-op when identifiers
// are preserved.
func (p *RegenerateIdentifiers) Apply(_ context.Context, markup string, preserveIdentifiers bool) (string, error) {
	if preserveIdentifiers {
		return markup, nil
	}

	mapping := make(map[string]string)
	next := 0

	markup = idAttr.ReplaceAllStringFunc(markup, func(attr string) string {
		m := idAttr.FindStringSubmatch(attr)
		short, ok := mapping[m[1]]
		if !ok {
			short = shortName(next)
			next++
			mapping[m[1]] = short
		}
		return fmt.Sprintf(` id="%s"`, short)
	})

	markup = idRef.ReplaceAllStringFunc(markup, func(ref string) string {
		m := idRef.FindStringSubmatch(ref)
		if short, ok := mapping[m[1]]; ok {
			return fmt.Sprintf("url(#%s)", short)
		}
		return ref
	})

	out := hrefRef.ReplaceAllStringFunc(markup, func(ref string) string {
		m := hrefRef.FindStringSubmatch(ref)
		if short, ok := mapping[m[2]]; ok {
			return fmt.Sprintf(`%s#%s"`, m[1], short)
		}
		return ref
	})
	return out, nil
}

// shortName yields a, b, ..., z, aa, ab, ... for index n.
func shortName(n int) string {
	var b []byte
	for {
		b = append([]byte{byte('a' + n%26)}, b...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(b)
}

// Interface checks.
var (
	_ driven.MarkupPass = (*StripNoise)(nil)
	_ driven.MarkupPass = (*InlineStylesheets)(nil)
	_ driven.MarkupPass = (*CanonicalizePathData)(nil)
	_ driven.MarkupPass = (*RegenerateIdentifiers)(nil)
)
