// Package svg extracts normalized symbol entries from raw SVG documents.
//
// Source files in the wild are structurally inconsistent: arbitrary
// nesting of <svg> containers, missing dimensions, inline styles and
// mixed id schemes. Instead of a strict tree parser, the package uses a
// position-indexed scan that discovers every nested <svg> block, scores
// the candidates and picks the one most likely to hold the real artwork.
// Malformed input degrades to fewer discovered fragments, never a crash.
package svg
