package pipeline

import (
	"regexp"
	"strings"
)

// Over-encoded badge span emitted by the pandoc shipped with Debian Jessie.
const (
	legacyEncodedBadge = "&lt;span class=&quot;fa fa-envelope badge&quot;&gt;&lt;/span&gt;"
	legacyDecodedBadge = `<span class="fa fa-envelope badge"></span>`
)

// Precompiled patterns for the current-pandoc repairs. Numbered titles carry
// an "N// " marker injected upstream to keep pandoc's list autodetection from
// turning "N." at line start into an ordered list; these decode it back.
var (
	numberedTitle   = regexp.MustCompile(`<title>(\d+)// (.*?)</title>`)
	numberedMeta    = regexp.MustCompile(`<meta (.*?) content="(\d+)// (.*?)" />`)
	numberedHeading = regexp.MustCompile(`(\s*)<h1 (.*?)>(\d+)// (.*?)</h1>`)
)

// FixLegacyEncoding repairs the double-HTML-encoded envelope badge produced
// by old pandoc releases. Literal substitution, all occurrences per line.
func FixLegacyEncoding(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		out[i] = strings.ReplaceAll(line, legacyEncodedBadge, legacyDecodedBadge)
	}
	return out
}

// FixCurrentEncoding repairs defects seen in newer pandoc releases: mangled
// quote sequences around template-injected anchors, the numbered-heading
// obfuscation marker, and paragraphs holding nothing but a line break.
func FixCurrentEncoding(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		// pandoc sporadically re-encodes template variable substitutions
		// that are meant to inject literal anchor markup
		line = strings.ReplaceAll(line, "&lt;a href=“", `<a href="`)
		line = strings.ReplaceAll(line, "”&gt;", `">`)

		line = replaceFirst(numberedTitle, line, "<title>${1}. ${2}</title>")
		line = replaceFirst(numberedMeta, line, `<meta ${1} content="${2}. ${3}" />`)
		line = replaceFirst(numberedHeading, line, "${1}<h1 ${2}>${3}. ${4}</h1>")

		line = strings.ReplaceAll(line, "<p><br /></p>", "<br />\n")
		out[i] = line
	}
	return out
}

// replaceFirst rewrites only the first match of re in s using template,
// leaving the rest of the line, including its newline, untouched.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}
