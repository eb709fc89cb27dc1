package assemble

import (
	"regexp"
	"strings"
	"testing"

	"tgschema/schema"
	"tgschema/scrape"
)

// textConverter stands in for the Markdown renderer: it just strips
// tags, which is all the assembly logic needs for assertions.
type textConverter struct{}

var tagRE = regexp.MustCompile(`<[^>]+>`)

func (textConverter) ConvertString(html string) (string, error) {
	return strings.TrimSpace(tagRE.ReplaceAllString(html, "")), nil
}

func stringRow(name, desc string, required bool) scrape.TableRow {
	return scrape.TableRow{
		Name:            name,
		Type:            schema.TypeInfo{Text: "String"},
		Required:        required,
		DescriptionHTML: desc,
	}
}

func TestAssembleSplitsObjectsAndMethods(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{
		{Title: "Dice", Anchor: "#dice", Rows: []scrape.TableRow{stringRow("emoji", "The emoji", true)}},
		{Title: "sendDice", Anchor: "#senddice", DescriptionHTML: "<p>On success, the sent <a href=\"#message\">Message</a> is returned.</p>"},
	}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	var dice *Object
	for _, o := range doc.Objects {
		if o.Name == "Dice" {
			dice = o
		}
	}
	if dice == nil {
		t.Fatal("Dice object missing")
	}
	if len(dice.Fields) != 1 || dice.Fields[0].Key != "emoji" {
		t.Errorf("unexpected fields: %+v", dice.Fields)
	}

	if len(doc.Methods) != 1 {
		t.Fatalf("expected 1 method, got %d", len(doc.Methods))
	}
	m := doc.Methods[0]
	if m.Name != "sendDice" {
		t.Errorf("expected sendDice, got %s", m.Name)
	}
	if m.Returns == nil || m.Returns.Type != schema.Reference || m.Returns.Reference.Name != "Message" {
		t.Errorf("unexpected return type: %+v", m.Returns)
	}
}

func TestAssembleOneOfVariants(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{{
		Title:  "MaybeInaccessibleMessage",
		Anchor: "#maybeinaccessiblemessage",
		OneOf: []schema.TypeInfo{
			{Text: "Message", Links: []schema.TypeLink{{Text: "Message", Href: "#message"}}},
			{Text: "InaccessibleMessage", Links: []schema.TypeLink{{Text: "InaccessibleMessage", Href: "#inaccessiblemessage"}}},
		},
	}}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	o := doc.Objects[0]
	if len(o.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %+v", o.Variants)
	}
	if o.Variants[0].Type != schema.Reference || o.Variants[0].Reference.Name != "Message" {
		t.Errorf("unexpected variant: %+v", o.Variants[0])
	}
}

func TestFormattableSiblings(t *testing.T) {
	fields := []*schema.Field{
		{Key: "caption", Type: schema.String},
		{Key: "caption_parse_mode", Type: schema.String},
		{Key: "title", Type: schema.String},
	}
	applyFormattableSiblings(fields, false)

	if fields[0].SemanticType != "formattable" {
		t.Errorf("caption should be formattable: %+v", fields[0])
	}
	if fields[2].SemanticType != "" {
		t.Errorf("title has no companion and must stay plain: %+v", fields[2])
	}
}

func TestFormattableEntitiesOnlyForMethods(t *testing.T) {
	fields := []*schema.Field{
		{Key: "text", Type: schema.String},
		{Key: "text_entities", Type: schema.String},
	}

	applyFormattableSiblings(fields, false)
	if fields[0].SemanticType != "" {
		t.Errorf("entities companions only count for method parameters: %+v", fields[0])
	}

	applyFormattableSiblings(fields, true)
	if fields[0].SemanticType != "formattable" {
		t.Errorf("expected formattable for method parameter: %+v", fields[0])
	}
}

func TestSendingFilesRewrite(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{{
		Title: "sendVoice",
		Rows: []scrape.TableRow{
			stringRow("voice", "Audio file to send. More information on Sending Files", true),
		},
	}}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f := doc.Methods[0].Parameters[0]
	if f.Type != schema.OneOf || len(f.Variants) != 2 {
		t.Fatalf("expected a 2-variant union, got %+v", f)
	}
	if f.Variants[0].Reference == nil || f.Variants[0].Reference.Name != "InputFile" {
		t.Errorf("expected InputFile variant, got %+v", f.Variants[0])
	}
	if f.Variants[1].Type != schema.String {
		t.Errorf("expected string variant, got %+v", f.Variants[1])
	}
	if f.Key != "voice" || !f.Required {
		t.Errorf("key and required must survive the rewrite: %+v", f)
	}
}

func TestCurrencySemanticType(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{{
		Title: "Invoice",
		Rows: []scrape.TableRow{
			stringRow("currency", "Three-letter ISO 4217 currency code", true),
		},
	}}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f := doc.Objects[0].Fields[0]
	if f.SemanticType != "currency" {
		t.Errorf("expected currency semantic type, got %+v", f)
	}
}

func TestConstForcesRequired(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{{
		Title: "InlineQueryResultPhoto",
		Rows: []scrape.TableRow{
			stringRow("type", `Type of the result, always "photo"`, false),
		},
	}}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f := doc.Objects[0].Fields[0]
	if f.Const != "photo" {
		t.Fatalf("expected const photo, got %+v", f)
	}
	if !f.Required {
		t.Errorf("a const field is always required: %+v", f)
	}
}

func TestDefaultForcesOptional(t *testing.T) {
	page := &scrape.Page{Sections: []scrape.Section{{
		Title: "getUpdates",
		Rows: []scrape.TableRow{{
			Name:            "timeout",
			Type:            schema.TypeInfo{Text: "Integer"},
			Required:        true,
			DescriptionHTML: "Amount of time in seconds. Defaults to 30.",
		}},
	}}}

	doc, err := Assemble(page, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	f := doc.Methods[0].Parameters[0]
	if f.Default != float64(30) {
		t.Fatalf("expected default 30, got %+v", f)
	}
	if f.Required {
		t.Errorf("a field with a default must be optional: %+v", f)
	}
}

func TestSyntheticObjectsInjected(t *testing.T) {
	doc, err := Assemble(&scrape.Page{}, textConverter{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	names := make(map[string]bool)
	for _, o := range doc.Objects {
		names[o.Name] = true
	}
	if !names["ApiSuccess"] || !names["ApiError"] {
		t.Errorf("expected injected response envelopes, got %v", names)
	}
}
