package types

import "time"

// FieldTemplate is a reusable, admin-managed field name available for
// selection on any consignment. Templates live independently of
// consignments; a measurement that sourced its name from a template
// keeps that name even after the template is renamed or deleted.
type FieldTemplate struct {
	TemplateID string    `json:"template_id"` // UUID v7, generated on creation.
	Name       string    `json:"name"`        // Unique across the registry, case-insensitive.
	CreatedAt  time.Time `json:"created_at"`
}
