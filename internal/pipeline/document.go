package pipeline

import (
	"fmt"
	"io"
	"strings"
)

// Document is an ordered sequence of text lines. Each line keeps its
// trailing newline when the source stream had one; the final line may not.
type Document []string

// ReadDocument reads the full input stream into a Document.
func ReadDocument(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits content into lines, keeping newline terminators.
// Content ending in a newline does not grow a trailing empty line.
func SplitLines(content string) Document {
	if content == "" {
		return Document{}
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Document(lines)
}

// String concatenates the lines back into the document text.
func (d Document) String() string {
	return strings.Join(d, "")
}
