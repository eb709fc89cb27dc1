// Package format writes assembled schema documents in the supported
// output formats.
package format

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"tgschema/assemble"
)

// Encoder writes a schema document in one output format.
type Encoder interface {
	Encode(doc *assemble.Document) error
}

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *assemble.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

// Encode goes through JSON first so both formats honor the same struct
// tags and omit the same unset facets.
func (e *YAMLEncoder) Encode(doc *assemble.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return err
	}
	_, err = e.w.Write(out)
	return err
}
