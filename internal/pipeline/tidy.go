package pipeline

import "strings"

// Tidy applies the cosmetic cleanup passes: space around horizontal rules,
// merging trailing comments onto their </div> line, and a blank line before
// the body div. The merge pass is the only place the pipeline drops a line.
func Tidy(doc Document) Document {
	doc = spaceHorizontalRules(doc)
	doc = mergeDivComments(doc)
	return spaceBodyDiv(doc)
}

// spaceHorizontalRules surrounds every <hr /> with blank lines.
func spaceHorizontalRules(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		out[i] = strings.ReplaceAll(line, "<hr />", "\n<hr />\n")
	}
	return out
}

// mergeDivComments joins a </div> line with a comment on the following line,
// so closing tags stay next to their descriptions. The scan walks the
// original sequence left to right and builds a fresh one, so a consumed
// line can never be consumed twice.
func mergeDivComments(doc Document) Document {
	out := make(Document, 0, len(doc))
	for i := 0; i < len(doc); i++ {
		line := doc[i]
		if i+1 < len(doc) && strings.HasPrefix(line, "</div>") {
			if comment, ok := trailingComment(doc[i+1]); ok {
				out = append(out, strings.TrimSuffix(line, "\n")+" "+comment+"\n")
				i++
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// trailingComment recognizes the two comment shapes pandoc leaves after a
// closing div: a bare comment line and a comment wrapped in a paragraph.
// It returns the comment with the paragraph wrapper stripped.
func trailingComment(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t\r\n")
	switch {
	case strings.HasPrefix(line, "<!--") && strings.HasSuffix(trimmed, "-->"):
		return trimmed, true
	case strings.HasPrefix(line, "<p><!--") && strings.HasSuffix(trimmed, "--></p>"):
		return strings.TrimSuffix(strings.TrimPrefix(trimmed, "<p>"), "</p>"), true
	}
	return "", false
}

// spaceBodyDiv inserts a blank line before the body div.
func spaceBodyDiv(doc Document) Document {
	out := make(Document, len(doc))
	for i, line := range doc {
		if strings.HasPrefix(line, `<div class="body">`) {
			out[i] = "\n" + line
		} else {
			out[i] = line
		}
	}
	return out
}
