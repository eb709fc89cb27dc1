package assemble

import "tgschema/schema"

// applyFormattableSiblings marks a string field as formattable when the
// same object or method also documents a parse-mode companion for it.
// Method parameters additionally count an entities companion. This
// needs the complete field list, so it runs here and not in the type
// resolver.
func applyFormattableSiblings(fields []*schema.Field, method bool) {
	keys := make(map[string]bool, len(fields))
	for _, f := range fields {
		keys[f.Key] = true
	}
	for _, f := range fields {
		if f.Type != schema.String {
			continue
		}
		if keys[f.Key+"_parse_mode"] || (method && keys[f.Key+"_entities"]) {
			f.SemanticType = "formattable"
		}
	}
}
