// Package reading provides the paragraphs used for typing practice.
package reading

import "fmt"

// Paragraph is one practice text.
type Paragraph struct {
	// ID is the paragraph's position in the catalog.
	ID   int
	Text string
}

// Count returns the number of paragraphs in the catalog.
func Count() int {
	return len(catalog)
}

// Paragraphs returns every paragraph in catalog order.
func Paragraphs() []Paragraph {
	out := make([]Paragraph, len(catalog))
	for i, text := range catalog {
		out[i] = Paragraph{ID: i, Text: text}
	}
	return out
}

// Get returns the paragraph with the given ID.
func Get(id int) (Paragraph, error) {
	if id < 0 || id >= len(catalog) {
		return Paragraph{}, fmt.Errorf("paragraph %d not found (have %d)", id, len(catalog))
	}
	return Paragraph{ID: id, Text: catalog[id]}, nil
}
