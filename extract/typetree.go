package extract

import (
	"strings"
	"unicode"

	"tgschema/sentence"
)

// TypeKind discriminates ExtractedType nodes.
type TypeKind int

const (
	TypeSingle TypeKind = iota
	TypeArray
	TypeOr
)

// ExtractedType is a recursive description of a type mention in prose:
// a single named type (with an anchor when the mention was a link), an
// array of an inner type, or a union of variants.
type ExtractedType struct {
	Kind     TypeKind
	Name     string           // single
	Href     string           // single, when the mention was a link
	Item     *ExtractedType   // array
	Variants []*ExtractedType // or
}

// StripPluralEnding drops one trailing rune from names ending in "es",
// turning "Messages" into "Message". Names that do not end in "es"
// ("Users") pass through unchanged. This is deliberately not a general
// pluralizer: "Statuses" becomes "Statuse".
func StripPluralEnding(name string) string {
	if strings.HasSuffix(name, "es") {
		return name[:len(name)-1]
	}
	return name
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// TypeFromParts builds a type tree from a return clause. Capitalized
// words are treated as type names; "otherwise" marks an either-or
// phrasing that unions every capitalized mention. Returns nil when the
// clause names no type.
func TypeFromParts(parts []sentence.Part) *ExtractedType {
	for _, p := range parts {
		if p.Inner == "otherwise" {
			return otherwiseUnion(parts)
		}
	}

	idx := -1
	for i, p := range parts {
		if startsUpper(p.Inner) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	name := StripPluralEnding(parts[idx].Inner)
	if name == "Array" {
		rest := parts[idx+1:]
		if len(rest) > 0 && rest[0].Inner == "of" {
			rest = rest[1:]
		}
		item := TypeFromParts(rest)
		if item == nil {
			return nil
		}
		return &ExtractedType{Kind: TypeArray, Item: item}
	}
	if hasArrayPrefix(parts[:idx]) {
		item := TypeFromParts(parts[idx:])
		if item == nil {
			return nil
		}
		return &ExtractedType{Kind: TypeArray, Item: item}
	}
	return &ExtractedType{Kind: TypeSingle, Name: name, Href: parts[idx].Href}
}

// hasArrayPrefix reports whether the Parts just before a type mention
// read "an array of" or "a|the list of".
func hasArrayPrefix(before []sentence.Part) bool {
	if len(before) < 3 {
		return false
	}
	a := before[len(before)-3].Inner
	b := before[len(before)-2].Inner
	c := before[len(before)-1].Inner
	if c != "of" {
		return false
	}
	if a == "an" && b == "array" {
		return true
	}
	return (a == "a" || a == "the") && b == "list"
}

func otherwiseUnion(parts []sentence.Part) *ExtractedType {
	var variants []*ExtractedType
	for _, p := range parts {
		if p.Inner == "otherwise" || !startsUpper(p.Inner) {
			continue
		}
		variants = append(variants, &ExtractedType{
			Kind: TypeSingle,
			Name: StripPluralEnding(p.Inner),
			Href: p.Href,
		})
	}
	if len(variants) == 0 {
		return nil
	}
	return &ExtractedType{Kind: TypeOr, Variants: variants}
}
