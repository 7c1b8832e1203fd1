package svg

import (
	"regexp"
	"strings"

	"github.com/flagforge/symbolkit/internal/core/domain"
)

// openTagStart matches the start of an <svg> opening tag. The tag's
// attributes run until the next '>', found separately.
var openTagStart = regexp.MustCompile(`(?i)<svg[\s>]`)

// closeTag matches a closing </svg> tag.
var closeTag = regexp.MustCompile(`(?i)</svg\s*>`)

// tagMark is one tag occurrence found during the scan.
type tagMark struct {
	// pos is the text offset of the '<'.
	pos int

	// end is the offset just past the tag's '>'.
	end int

	// open distinguishes opening from closing tags.
	open bool
}

// DiscoverFragments returns every well-formed <svg> block in markup,
// handling nesting of same-named containers to arbitrary depth.
//
// The scan records the offset of every opening and closing tag, merges
// them in document order and walks the list with an explicit stack:
// push on open, pop on close, emitting one fragment per matched pair.
// A closing tag with no unmatched opening is ignored rather than fatal.
// Zero matched pairs yields an empty slice.
func DiscoverFragments(markup string) []domain.Fragment {
	marks := scanTags(markup)
	if len(marks) == 0 {
		return nil
	}

	var fragments []domain.Fragment
	var stack []tagMark
	for _, mark := range marks {
		if mark.open {
			stack = append(stack, mark)
			continue
		}
		if len(stack) == 0 {
			// Unmatched closing tag: malformed input, skip it.
			continue
		}
		opened := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fragments = append(fragments, domain.Fragment{
			StartTag: markup[opened.pos:opened.end],
			Content:  markup[opened.end:mark.pos],
			Depth:    len(stack) + 1,
		})
	}
	return fragments
}

// scanTags finds every opening and closing tag occurrence, merged in
// position order.
func scanTags(markup string) []tagMark {
	var marks []tagMark

	for _, loc := range openTagStart.FindAllStringIndex(markup, -1) {
		gt := strings.IndexByte(markup[loc[0]:], '>')
		if gt < 0 {
			// Opening tag never terminated: drop it.
			continue
		}
		marks = append(marks, tagMark{pos: loc[0], end: loc[0] + gt + 1, open: true})
	}

	for _, loc := range closeTag.FindAllStringIndex(markup, -1) {
		marks = append(marks, tagMark{pos: loc[0], end: loc[1], open: false})
	}

	// Both match sets are already position-sorted; merge them.
	sortMarks(marks)
	return marks
}

// sortMarks orders marks by position (insertion sort - tag counts per
// document are tiny).
func sortMarks(marks []tagMark) {
	for i := 1; i < len(marks); i++ {
		for j := i; j > 0 && marks[j].pos < marks[j-1].pos; j-- {
			marks[j], marks[j-1] = marks[j-1], marks[j]
		}
	}
}
