// Package assemble walks scraped sections, resolves each row through
// the type engine and builds the final schema document.
package assemble

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tliron/commonlog"

	"tgschema/schema"
	"tgschema/scrape"
)

var log = commonlog.GetLogger("tgschema.assemble")

// MarkdownConverter renders description HTML to Markdown. It is
// injected so rendering carries no process-global state.
type MarkdownConverter interface {
	ConvertString(html string) (string, error)
}

// Object is a documented compound type: either a set of fields or a
// list of one-of variants.
type Object struct {
	Name        string          `json:"name"`
	Anchor      string          `json:"anchor"`
	Description string          `json:"description,omitempty"`
	Fields      []*schema.Field `json:"fields,omitempty"`
	Variants    []*schema.Field `json:"variants,omitempty"`
}

// Method is a documented API method.
type Method struct {
	Name        string          `json:"name"`
	Anchor      string          `json:"anchor"`
	Description string          `json:"description,omitempty"`
	Parameters  []*schema.Field `json:"parameters,omitempty"`
	Returns     *schema.Field   `json:"returns"`
}

// Document is the assembled schema for one documentation page.
type Document struct {
	Objects []*Object `json:"objects"`
	Methods []*Method `json:"methods"`
}

// Assemble builds the schema document from a scraped page. Sections
// with a lowercase-initial title are methods, the rest are objects.
func Assemble(page *scrape.Page, conv MarkdownConverter) (*Document, error) {
	doc := &Document{}
	for _, sec := range page.Sections {
		desc, err := renderMarkdown(conv, sec.DescriptionHTML)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", sec.Title, err)
		}

		if isMethodName(sec.Title) {
			m := &Method{Name: sec.Title, Anchor: sec.Anchor, Description: desc}
			for _, row := range sec.Rows {
				f, err := buildField(row, conv, true)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: %w", sec.Title, row.Name, err)
				}
				m.Parameters = append(m.Parameters, f)
			}
			applyFormattableSiblings(m.Parameters, true)
			m.Returns = schema.ResolveReturnType(sec.DescriptionHTML)
			doc.Methods = append(doc.Methods, m)
			continue
		}

		o := &Object{Name: sec.Title, Anchor: sec.Anchor, Description: desc}
		for _, row := range sec.Rows {
			f, err := buildField(row, conv, false)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", sec.Title, row.Name, err)
			}
			o.Fields = append(o.Fields, f)
		}
		if len(o.Fields) == 0 {
			for _, info := range sec.OneOf {
				o.Variants = append(o.Variants, schema.ResolveType(info, ""))
			}
		}
		if len(o.Fields) == 0 && len(o.Variants) == 0 {
			log.Debugf("object %s has no fields", o.Name)
		}
		applyFormattableSiblings(o.Fields, false)
		doc.Objects = append(doc.Objects, o)
	}
	injectSynthetic(doc)
	return doc, nil
}

// buildField resolves one table row into a Field and merges the row's
// key, required flag and rendered description onto it.
func buildField(row scrape.TableRow, conv MarkdownConverter, method bool) (*schema.Field, error) {
	f := schema.ResolveType(row.Type, row.DescriptionHTML)
	f.Key = row.Name
	f.Required = row.Required
	if f.Const != nil {
		// A constant field is always present.
		f.Required = true
	}
	if f.Default != nil {
		// A field with a default can be omitted.
		f.Required = false
	}

	desc, err := renderMarkdown(conv, row.DescriptionHTML)
	if err != nil {
		return nil, err
	}
	f.Description = desc

	if f.Type == schema.String {
		// Phrase checks run on flattened text so inline links inside
		// the phrase cannot hide it.
		plain := schema.PlainText(row.DescriptionHTML)
		if strings.Contains(plain, "ISO 4217") {
			f.SemanticType = "currency"
		}
		if strings.Contains(plain, "More information on Sending Files") {
			return sendingFilesUnion(f), nil
		}
	}
	return f, nil
}

// sendingFilesUnion rewrites a file-upload string field into the
// InputFile-or-string union its description actually allows.
func sendingFilesUnion(f *schema.Field) *schema.Field {
	return &schema.Field{
		Key:         f.Key,
		Type:        schema.OneOf,
		Required:    f.Required,
		Description: f.Description,
		Variants: []*schema.Field{
			{Type: schema.Reference, Reference: &schema.TypeReference{Name: "InputFile", Anchor: "#inputfile"}},
			{Type: schema.String},
		},
	}
}

func renderMarkdown(conv MarkdownConverter, fragment string) (string, error) {
	if fragment == "" {
		return "", nil
	}
	out, err := conv.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func isMethodName(title string) bool {
	for _, r := range title {
		return unicode.IsLower(r)
	}
	return false
}
