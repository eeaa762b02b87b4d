package profile

// BuildProfileJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used locally to validate profile files before decoding.
func BuildProfileJSONSchema() map[string]any {
	props := map[string]any{
		"buyer_name":    map[string]any{"type": "string"},
		"buyer_tax_no":  taxNoProp(),
		"seller_name":   map[string]any{"type": "string"},
		"seller_tax_no": taxNoProp(),

		"drawer_keyword": map[string]any{"type": "string", "minLength": 1},
		"default_drawer": map[string]any{"type": "string"},
		"item_pattern":   map[string]any{"type": "string", "minLength": 1},
		"default_item":   map[string]any{"type": "string"},

		"name_deny_tokens":    stringListProp(),
		"remark_skip_tokens":  stringListProp(),
		"invoice_type_labels": stringListProp(),

		"source_platform":  map[string]any{"type": "string"},
		"invoice_category": map[string]any{"type": "string"},
		"status_label":     map[string]any{"type": "string"},
		"polarity_label":   map[string]any{"type": "string"},
		"risk_label":       map[string]any{"type": "string"},

		"totals_marker": map[string]any{"type": "string", "minLength": 1},
		"output_suffix": map[string]any{"type": "string", "minLength": 1},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// taxNoProp constrains the 18-character registration numbers used in this
// domain. They are treated as opaque beyond the shape check.
func taxNoProp() map[string]any {
	return map[string]any{
		"type":      "string",
		"minLength": 18,
		"maxLength": 18,
		"pattern":   `^[0-9A-Z]{18}$`,
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
}
