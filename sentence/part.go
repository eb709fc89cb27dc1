// Package sentence turns HTML description fragments into sequences of
// Sentences, the unit the extraction grammar operates on.
package sentence

// PartKind records the provenance of a Part within the source markup.
type PartKind int

const (
	PartWord PartKind = iota
	PartLink
	PartBold
	PartItalic
	PartCode
)

func (k PartKind) String() string {
	switch k {
	case PartWord:
		return "word"
	case PartLink:
		return "link"
	case PartBold:
		return "bold"
	case PartItalic:
		return "italic"
	case PartCode:
		return "code"
	}
	return "unknown"
}

// MarshalText renders the kind as its name so dumped sentences stay
// readable.
func (k PartKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Part is the atomic unit of a Sentence. HasQuotes marks a Part built
// by collapsing a quoted span into a single value. Only link Parts
// carry an Href.
type Part struct {
	Inner     string   `json:"inner"`
	HasQuotes bool     `json:"hasQuotes,omitempty"`
	Kind      PartKind `json:"kind"`
	Href      string   `json:"href,omitempty"`
}

// Sentence is an ordered sequence of Parts bounded by sentence-ending
// punctuation outside quotes and parentheses, or by end of input.
type Sentence []Part
