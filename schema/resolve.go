package schema

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"tgschema/extract"
	"tgschema/sentence"
)

// TypeLink is one anchor found inside a type cell.
type TypeLink struct {
	Text string
	Href string
}

// TypeInfo is the literal type-column content of a table row: the cell
// text plus whatever anchors it carried.
type TypeInfo struct {
	Text  string
	Links []TypeLink
}

var arrayOfRE = regexp.MustCompile(`(?i)^Array of (.+)$`)

// ResolveType turns a row's literal type text plus its description into
// a Field. Key, Required and the rendered Description are merged in by
// the assembler, not here. Resolution never fails: unrecognized type
// text degrades to a bare string Field.
func ResolveType(info TypeInfo, descriptionHTML string) *Field {
	if m := arrayOfRE.FindStringSubmatch(info.Text); m != nil {
		inner := m[1]
		links := linksIn(inner, info.Links)
		if len(links) > 1 {
			// "Array of InputMediaAudio, InputMediaDocument and
			// InputMediaVideo": every name is its own link.
			variants := make([]*Field, 0, len(links))
			for _, l := range links {
				variants = append(variants, referenceField(l.Text, l.Href))
			}
			return &Field{Type: OneOf, Variants: variants}
		}
		return &Field{
			Type:    Array,
			ArrayOf: ResolveType(TypeInfo{Text: inner, Links: links}, descriptionHTML),
		}
	}

	if strings.Contains(info.Text, " or ") {
		halves := strings.Split(info.Text, " or ")
		variants := make([]*Field, 0, len(halves))
		for _, h := range halves {
			h = strings.TrimSpace(h)
			variants = append(variants, ResolveType(TypeInfo{Text: h, Links: linksIn(h, info.Links)}, descriptionHTML))
		}
		return &Field{Type: OneOf, Variants: variants}
	}

	name, href := info.Text, ""
	if len(info.Links) > 0 {
		name, href = info.Links[0].Text, info.Links[0].Href
	}

	switch name {
	case "Integer", "Int":
		f := &Field{Type: Integer}
		applyNumericDetails(f, descriptionHTML, true)
		return f
	case "Float", "Float number":
		f := &Field{Type: Float}
		applyNumericDetails(f, descriptionHTML, false)
		return f
	case "String":
		f := &Field{Type: String}
		applyStringDetails(f, descriptionHTML)
		return f
	case "Boolean":
		return &Field{Type: Boolean}
	case "True":
		return &Field{Type: Boolean, Const: true}
	case "False":
		return &Field{Type: Boolean, Const: false}
	}
	if href != "" {
		return referenceField(name, href)
	}
	if startsUpper(name) {
		// A capitalized name without a link still refers to an object
		// on the same page.
		return referenceField(name, "#"+strings.ToLower(name))
	}
	return &Field{Type: String}
}

// ResolveReturnType resolves a method description's returns clause into
// a Field without a key. Descriptions that never name a result degrade
// to a string Field.
func ResolveReturnType(descriptionHTML string) *Field {
	sentences := sentence.ParseDescription(descriptionHTML)
	clause, ok := extract.ReturnClause(sentences)
	if !ok {
		return &Field{Type: String}
	}
	t := extract.TypeFromParts(clause)
	if t == nil {
		return &Field{Type: String}
	}
	return fieldFromExtracted(t)
}

func fieldFromExtracted(t *extract.ExtractedType) *Field {
	switch t.Kind {
	case extract.TypeArray:
		return &Field{Type: Array, ArrayOf: fieldFromExtracted(t.Item)}
	case extract.TypeOr:
		variants := make([]*Field, 0, len(t.Variants))
		for _, v := range t.Variants {
			variants = append(variants, fieldFromExtracted(v))
		}
		return &Field{Type: OneOf, Variants: variants}
	}

	switch t.Name {
	case "Integer", "Int":
		return &Field{Type: Integer}
	case "Float":
		return &Field{Type: Float}
	case "String":
		return &Field{Type: String}
	case "Boolean":
		return &Field{Type: Boolean}
	case "True":
		return &Field{Type: Boolean, Const: true}
	case "False":
		return &Field{Type: Boolean, Const: false}
	}
	if t.Href != "" {
		return referenceField(t.Name, t.Href)
	}
	if startsUpper(t.Name) {
		return referenceField(t.Name, "#"+strings.ToLower(t.Name))
	}
	return &Field{Type: String}
}

func referenceField(name, anchor string) *Field {
	return &Field{Type: Reference, Reference: &TypeReference{Name: name, Anchor: anchor}}
}

// linksIn keeps the links whose text occurs in the given slice of the
// type text, so a union side only inherits its own anchor.
func linksIn(text string, links []TypeLink) []TypeLink {
	var out []TypeLink
	for _, l := range links {
		if strings.Contains(text, l.Text) {
			out = append(out, l)
		}
	}
	return out
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// fieldDetails is what one description pass yields for a scalar field.
type fieldDetails struct {
	def       string
	hasDef    bool
	rng       extract.Range
	hasRange  bool
	sentences []sentence.Sentence
}

func parseFieldDetails(descriptionHTML string) fieldDetails {
	if descriptionHTML == "" {
		return fieldDetails{}
	}
	d := fieldDetails{sentences: sentence.ParseDescription(descriptionHTML)}
	d.def, d.hasDef = extract.Default(d.sentences)
	d.rng, d.hasRange = extract.MinMax(d.sentences)
	return d
}

// parseNumber parses a captured bound or default. Failures mean the
// value is absent; nothing non-numeric may reach a constraint field.
func parseNumber(s string, integer bool) (float64, error) {
	if integer {
		v, err := strconv.ParseInt(s, 10, 64)
		return float64(v), err
	}
	return strconv.ParseFloat(s, 64)
}

func applyNumericDetails(f *Field, descriptionHTML string, integer bool) {
	d := parseFieldDetails(descriptionHTML)
	if d.hasRange {
		if v, err := parseNumber(d.rng.Min, integer); err == nil {
			f.Min = &v
		}
		if v, err := parseNumber(d.rng.Max, integer); err == nil {
			f.Max = &v
		}
	}
	if d.hasDef {
		if v, err := parseNumber(d.def, integer); err == nil {
			f.Default = v
		}
	}
	if values := DetectEnum(descriptionHTML, d.sentences, true); len(values) > 1 {
		nums := make([]float64, 0, len(values))
		for _, s := range values {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return
			}
			nums = append(nums, v)
		}
		f.Enum = nums
	}
}

var alwaysConstRE = regexp.MustCompile(`always (?:"([^"]+)"|\x{201c}([^\x{201d}]+)\x{201d})`)

func applyStringDetails(f *Field, descriptionHTML string) {
	d := parseFieldDetails(descriptionHTML)
	if values := DetectEnum(descriptionHTML, d.sentences, false); len(values) > 1 {
		f.Enum = values
	}
	if m := alwaysConstRE.FindStringSubmatch(PlainText(descriptionHTML)); m != nil {
		if m[1] != "" {
			f.Const = m[1]
		} else {
			f.Const = m[2]
		}
	} else if d.hasDef {
		// A constant field never also carries a default.
		f.Default = d.def
	}
	if d.hasRange {
		if v, err := strconv.Atoi(d.rng.Min); err == nil {
			f.MinLen = &v
		}
		if v, err := strconv.Atoi(d.rng.Max); err == nil {
			f.MaxLen = &v
		}
	}
}
