package pipeline

import (
	"fmt"
	"io"
)

// Pipeline applies the full post-processing sequence to a pandoc HTML
// stream. The stage order is load-bearing: the encoding repairs must precede
// the feature rewrites, which assume well-formed anchors; the web-root
// rewrite follows the image-link stage so sized-image paths are still
// site-relative when matched; tidy runs last, on final tag shapes.
type Pipeline struct {
	webroot string
}

// New returns a Pipeline that prefixes site-relative image URLs with
// webroot. An empty webroot is valid for sites served at the domain root.
func New(webroot string) *Pipeline {
	return &Pipeline{webroot: webroot}
}

// Apply runs every stage over doc in order and returns the result.
func (p *Pipeline) Apply(doc Document) Document {
	// essential repairs
	doc = FixLegacyEncoding(doc)
	doc = FixCurrentEncoding(doc)

	// functionality enhancements
	doc = LinkImages(doc)
	doc = OpenTabsWhenClicked(doc)
	doc = GenerateTooltips(doc)
	doc = AdjustImageURLs(doc, p.webroot)

	// aesthetic cleanup
	return Tidy(doc)
}

// Run reads the full input from r, applies the pipeline, and writes the
// result to w as a single flush.
func (p *Pipeline) Run(r io.Reader, w io.Writer) error {
	doc, err := ReadDocument(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, p.Apply(doc).String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
