// Package bcpost post-processes pandoc HTML for publication.
//
// pandoc output for a bassclef site arrives on a stream and leaves as
// corrected HTML on another stream. In between, an ordered sequence of
// line-level rewrites repairs known pandoc encoding defects, decodes the
// numbered-heading obfuscation injected upstream, links sized images to
// their full-size originals, adds new-tab behavior and tooltips to social
// badge links, prefixes site-relative image URLs with the configured web
// root, and tidies the final markup.
//
// # Quick Start
//
//	svc := bcpost.NewService(bcpost.WithWebroot("/blog"))
//	if err := svc.Process(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Design
//
// The input is treated as a semi-structured line stream, never parsed into a
// DOM. pandoc's output is closely controlled, and each rewrite's exact match
// policy (first match per line vs all matches) is part of the contract, so
// the stages work with substring and regular-expression matching only. Lines
// no stage recognizes pass through byte-for-byte.
//
// Processing is pure and deterministic: the whole document is read before
// any stage runs, every stage maps a line sequence to a new line sequence,
// and the result is written as a single flush.
package bcpost
