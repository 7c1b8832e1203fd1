package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RecolorKind identifies how explicit colors are rewritten during
// style normalisation.
type RecolorKind int

const (
	// RecolorKeep leaves the markup's colors untouched.
	RecolorKeep RecolorKind = iota

	// RecolorTintReady wraps the markup in a group whose fill and stroke
	// reference currentColor, so a renderer can recolor the whole emblem
	// at draw time.
	RecolorTintReady

	// RecolorMono wraps the markup in a group with a fixed color.
	RecolorMono
)

// RecolorMode is a parsed recolor option.
type RecolorMode struct {
	Kind RecolorKind

	// Color is the hex literal for RecolorMono, including the leading '#'.
	Color string
}

var hexColor = regexp.MustCompile(`^(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseRecolorMode parses a recolor option string. Accepted forms are
// "keep", "tintReady" and "mono:<hex>" where <hex> is a 3- or 6-digit
// hex color without '#'. Keyword matching is case-insensitive; the hex
// digits are validated literally.
func ParseRecolorMode(s string) (RecolorMode, error) {
	lower := strings.ToLower(s)
	switch {
	case s == "" || lower == "keep":
		return RecolorMode{Kind: RecolorKeep}, nil
	case lower == "tintready" || lower == "tint-ready":
		return RecolorMode{Kind: RecolorTintReady}, nil
	case strings.HasPrefix(lower, "mono:"):
		hex := s[len("mono:"):]
		if !hexColor.MatchString(hex) {
			return RecolorMode{}, fmt.Errorf("%w: mono color %q is not a 3- or 6-digit hex literal", ErrInvalidInput, hex)
		}
		return RecolorMode{Kind: RecolorMono, Color: "#" + hex}, nil
	default:
		return RecolorMode{}, fmt.Errorf("%w: unknown recolor mode %q", ErrInvalidInput, s)
	}
}

// String renders the mode back to its option form.
func (m RecolorMode) String() string {
	switch m.Kind {
	case RecolorTintReady:
		return "tintReady"
	case RecolorMono:
		return "mono:" + strings.TrimPrefix(m.Color, "#")
	default:
		return "keep"
	}
}
