package assemble

import "tgschema/schema"

// injectSynthetic appends the response envelope objects. The page
// describes them only in prose, so they cannot be scraped.
func injectSynthetic(doc *Document) {
	doc.Objects = append(doc.Objects,
		&Object{
			Name:        "ApiSuccess",
			Anchor:      "#making-requests",
			Description: "Envelope of a successful request. The result of the query is found in the result field.",
			Fields: []*schema.Field{
				{Key: "ok", Type: schema.Boolean, Required: true, Const: true},
			},
		},
		&Object{
			Name:        "ApiError",
			Anchor:      "#making-requests",
			Description: "Envelope of a failed request, with the error explained in the description field.",
			Fields: []*schema.Field{
				{Key: "ok", Type: schema.Boolean, Required: true, Const: false},
				{Key: "error_code", Type: schema.Integer, Required: true},
				{Key: "description", Type: schema.String, Required: true},
				{
					Key:       "parameters",
					Type:      schema.Reference,
					Reference: &schema.TypeReference{Name: "ResponseParameters", Anchor: "#responseparameters"},
				},
			},
		},
	)
}
