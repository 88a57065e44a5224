// Package pipeline implements the pandoc HTML post-processing stages.
//
// A document is an ordered sequence of lines, each keeping its trailing
// newline. Every stage is a pure function from line sequence to line
// sequence:
//   - encoding repairs for old and current pandoc releases
//   - sized-image linking, new-tab behavior, and tooltips for badge links
//   - web-root prefixing of site-relative image URLs
//   - cosmetic tidying, including the div/comment line merge
//
// Stages observe single lines only, except the tidy merge, which inspects
// line pairs. No stage reorders lines; only the tidy merge may drop one.
package pipeline
