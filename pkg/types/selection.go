package types

// Selection names one field to attach to a consignment, sourced either
// from the template registry (TemplateID set) or typed ad hoc
// (FieldName set). Exactly one of the two must be provided. Value is
// the measurement value; leaving it empty stores the empty string — an
// absent value and an explicitly empty one are the same thing.
type Selection struct {
	TemplateID string `json:"template_id,omitempty"`
	FieldName  string `json:"field_name,omitempty"`
	Value      string `json:"value"`
}

// Validate checks that the selection names exactly one source.
// Returns ErrInvalidSelection when neither or both are set.
func (s Selection) Validate() error {
	if s.TemplateID == "" && s.FieldName == "" {
		return ErrInvalidSelection
	}
	if s.TemplateID != "" && s.FieldName != "" {
		return ErrInvalidSelection
	}
	return nil
}

// TemplateSelection returns a selection sourced from the registry.
func TemplateSelection(templateID, value string) Selection {
	return Selection{TemplateID: templateID, Value: value}
}

// CustomSelection returns a selection with an ad hoc field name.
func CustomSelection(fieldName, value string) Selection {
	return Selection{FieldName: fieldName, Value: value}
}
