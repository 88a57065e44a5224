package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the functionality enhancements. Badge anchors are
// matched by adjacency: the opening <a> immediately followed by an icon-font
// span, which is the shape the site templates emit for social links.
var (
	imageURLAttr = regexp.MustCompile(`(src|href)="/images/(.*?)"`)
	sizedImage   = regexp.MustCompile(`<img src="/images/sized/(.*?)" .*? />`)
	badgeAnchor  = regexp.MustCompile(`<a href="([^"]*?)"><span class="fa (.*?)">`)
	socialAnchor = regexp.MustCompile(`<a href="([^"]*?)" (.*?)><span class="fa (.*?)">`)
)

// tooltipTitles maps a URL substring to its tooltip label. The first
// matching substring wins; share URLs never match more than one.
var tooltipTitles = []struct {
	substr string
	title  string
}{
	{"twitter", "Tweet this"},
	{"facebook", "Share this on Facebook"},
	{"google", "Share this on Google+"},
	{"linkedin", "Share this on LinkedIn"},
	{"mailto", "Share this by Email"},
}

// AdjustImageURLs prefixes the first site-relative /images/ src or href on
// each line with the configured web root. Lines that already carry a
// prefixed image URL are left alone, so linked thumbnails (prefixed anchor,
// site-relative img src) survive a second run intact.
func AdjustImageURLs(doc Document, webroot string) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		out[i] = line
		if webroot == "" {
			continue
		}
		if strings.Contains(line, `="`+webroot+`/images/`) {
			continue
		}
		m := imageURLAttr.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		attr, path := m[1], m[2]
		out[i] = strings.Replace(line, m[0], attr+`="`+webroot+`/images/`+path+`"`, 1)
	}
	return out
}

// LinkImages wraps sized thumbnail images in anchors pointing at their
// full-size originals, dropping the sized/ path segment. An image already
// preceded by its full-size anchor is left alone, even after the web-root
// stage has prefixed that anchor's href.
func LinkImages(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		out[i] = line
		m := sizedImage.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		img, name := m[0], m[1]
		if strings.Contains(line, `/images/`+name+`">`+img) {
			continue
		}
		out[i] = strings.Replace(line, img, `<a href="/images/`+name+`">`+img+"</a>", 1)
	}
	return out
}

// OpenTabsWhenClicked makes social badge links open a new tab when clicked.
// The injected attribute breaks the adjacency match, so the rewrite never
// fires twice on the same anchor.
func OpenTabsWhenClicked(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		m := badgeAnchor.FindStringSubmatch(line)
		if m == nil {
			out[i] = line
			continue
		}
		url, classes := m[1], m[2]
		opened := `<a href="` + url + `" target="_blank"><span class="fa ` + classes + `">`
		out[i] = strings.Replace(line, m[0], opened, 1)
	}
	return out
}

// GenerateTooltips gives social badge links a descriptive title attribute
// based on the share URL. Anchors with unrecognized URLs, and anchors that
// already have a title, pass through unchanged.
func GenerateTooltips(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		out[i] = line
		m := socialAnchor.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		url, attrs, classes := m[1], m[2], m[3]
		if strings.Contains(attrs, "title=") {
			continue
		}
		title, ok := classifyShareURL(url)
		if !ok {
			continue
		}
		titled := `<a href="` + url + `" ` + attrs + ` title="` + title + `"><span class="fa ` + classes + `">`
		out[i] = strings.Replace(line, m[0], titled, 1)
	}
	return out
}

// classifyShareURL picks the tooltip label for a share URL, if any.
func classifyShareURL(url string) (string, bool) {
	for _, t := range tooltipTitles {
		if strings.Contains(url, t.substr) {
			return t.title, true
		}
	}
	return "", false
}
