// Package schema resolves literal type text and description prose into
// typed field descriptors.
package schema

// Kind discriminates Field variants.
type Kind string

const (
	Integer   Kind = "integer"
	Float     Kind = "float"
	String    Kind = "string"
	Boolean   Kind = "boolean"
	Array     Kind = "array"
	Reference Kind = "reference"
	OneOf     Kind = "one_of"
)

// TypeReference points at a named object defined elsewhere on the page.
type TypeReference struct {
	Name   string `json:"name"`
	Anchor string `json:"anchor"`
}

// Field is the resolved type descriptor for a parameter, object field
// or return value. It is a tagged union on Type: each variant uses only
// its own facets and leaves the rest zero, so serialization drops them.
type Field struct {
	Key         string `json:"key,omitempty"`
	Type        Kind   `json:"type"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`

	// integer, float
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// integer, float, string
	Default any `json:"default,omitempty"`
	Enum    any `json:"enum,omitempty"`

	// string, boolean
	Const any `json:"const,omitempty"`

	// string
	MinLen       *int   `json:"min_len,omitempty"`
	MaxLen       *int   `json:"max_len,omitempty"`
	SemanticType string `json:"semantic_type,omitempty"`

	// array
	ArrayOf *Field `json:"array_of,omitempty"`

	// reference
	Reference *TypeReference `json:"reference,omitempty"`

	// one_of, always at least two entries
	Variants []*Field `json:"variants,omitempty"`
}
