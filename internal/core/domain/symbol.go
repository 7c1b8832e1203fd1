package domain

import (
	"strings"
)

// SymbolEntry is the normalized, persisted unit of the symbol library.
// Entries are immutable once created within a run; a later run may
// overwrite an entry that derives the same ID.
type SymbolEntry struct {
	// ID uniquely identifies the entry within a library. It is restricted
	// to lowercase letters, digits, underscore, period and hyphen.
	ID string `json:"id"`

	// Name is the human-readable display label derived from the source
	// filename.
	Name string `json:"name"`

	// Category is a free-text grouping label, constant across one run.
	Category string `json:"category"`

	// ViewBox is the "minX minY width height" coordinate frame the
	// content must be interpreted in.
	ViewBox string `json:"viewBox"`

	// SVG is the normalized inner markup, without an outer <svg> tag.
	SVG string `json:"svg"`

	// SourceFile points at the originating raw file, relative to the
	// invocation location. Informational only.
	SourceFile string `json:"sourceFile"`
}

// boilerplate lists heraldic filler words stripped from display names.
var boilerplate = map[string]bool{
	"coat":     true,
	"of":       true,
	"arms":     true,
	"emblem":   true,
	"state":    true,
	"national": true,
	"the":      true,
}

// SanitizeID lowercases s and replaces every character outside
// [a-z0-9_.-] with an underscore.
func SanitizeID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '_', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DeriveName builds a display label from a source filename: the
// extension is dropped, common heraldic filler words are removed and
// each remaining word is capitalized. If stripping removes everything,
// the unstripped words are used instead.
func DeriveName(filename string) string {
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}

	words := splitWords(base)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if boilerplate[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, capitalize(w))
	}

	// Everything was filler (e.g. "coat_of_arms.svg") - keep the
	// original words rather than returning an empty name.
	if len(kept) == 0 {
		for _, w := range words {
			kept = append(kept, capitalize(w))
		}
	}

	return strings.Join(kept, " ")
}

// splitWords splits a filename stem on common separators.
func splitWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return fields
}

// capitalize upper-cases the first rune of a word.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
