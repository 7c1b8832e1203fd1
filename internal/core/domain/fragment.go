package domain

// Fragment is one candidate drawable region discovered inside a raw
// vector document. Fragments are transient: they are produced during
// parsing of a single document and consumed immediately by selection.
type Fragment struct {
	// StartTag is the literal opening-tag text of the drawable container,
	// including the angle brackets. Declared attributes are recovered
	// from it.
	StartTag string

	// Content is the exact substring between the container's opening and
	// closing tags. It may contain further nested fragments.
	Content string

	// Depth is the nesting depth at which this fragment was found.
	// A root-level container has depth 1; deeper nesting counts up.
	Depth int
}

// Candidate is a Fragment plus its derived ranking score.
// Candidates exist only while one document's fragments are being ranked.
type Candidate struct {
	Fragment

	// HasVectorContent reports whether the fragment's content contains
	// at least one drawable primitive element.
	HasVectorContent bool

	// Score ranks this candidate against its siblings. Higher wins.
	Score int
}
