package svg

import (
	"regexp"
	"sort"
	"strings"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// Scoring weights. Empirical tuning values: depth dominates so that the
// deepest container still holding real geometry wins, vector presence is
// a secondary tiebreak and raw primitive count a capped third.
const (
	depthWeight        = 10
	vectorContentBonus = 5
	primitiveCountCap  = 5
)

// primitiveTag matches the drawable element names that count as vector
// content when ranking candidates.
var primitiveTag = regexp.MustCompile(`(?i)<(path|polygon|polyline|circle|ellipse|rect|g|use)\b`)

// BuildCandidates scores each discovered fragment.
func BuildCandidates(fragments []domain.Fragment) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(fragments))
	for _, frag := range fragments {
		count := len(primitiveTag.FindAllStringIndex(frag.Content, -1))
		c := domain.Candidate{
			Fragment:         frag,
			HasVectorContent: count > 0,
		}
		c.Score = frag.Depth * depthWeight
		if c.HasVectorContent {
			c.Score += vectorContentBonus
		}
		if count > primitiveCountCap {
			count = primitiveCountCap
		}
		c.Score += count
		candidates = append(candidates, c)
	}
	return candidates
}

// Select ranks the candidates and returns the winning viewBox and
// trimmed inner markup.
//
// Candidates are tried best-first; one is accepted when its start tag
// resolves a viewBox and its trimmed content is non-empty. If every
// candidate fails, the lowest-scored (outermost) candidate gets one
// final try before the document is rejected with domain.ErrNoViewBox.
// A naive pick of the outermost block routinely captures wrapper chrome
// and the innermost risks a tiny decorative sub-element; the loop
// approximates "deepest container that still contains real geometry".
func Select(fragments []domain.Fragment) (viewBox, content string, err error) {
	if len(fragments) == 0 {
		return "", "", domain.ErrNoFragment
	}

	candidates := BuildCandidates(fragments)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		// Longer content wins ties: larger markup is more likely the
		// real artwork than an empty wrapper.
		return len(candidates[i].Content) > len(candidates[j].Content)
	})

	for _, c := range candidates {
		if vb, inner, ok := tryCandidate(c); ok {
			return vb, inner, nil
		}
	}

	// Last resort: the outermost candidate once more.
	if vb, inner, ok := tryCandidate(candidates[len(candidates)-1]); ok {
		return vb, inner, nil
	}

	return "", "", domain.ErrNoViewBox
}

// tryCandidate attempts viewBox resolution plus the non-empty-content
// check for one candidate.
func tryCandidate(c domain.Candidate) (viewBox, content string, ok bool) {
	vb, err := ResolveViewBox(c.StartTag)
	if err != nil {
		return "", "", false
	}
	inner := strings.TrimSpace(c.Content)
	if inner == "" {
		return "", "", false
	}
	return vb, inner, true
}
