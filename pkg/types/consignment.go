package types

import "time"

// Consignment is a tracked factory batch identified by name and
// creation time. Names are not required to be unique. Measurements is
// populated by detail reads and by CreateConsignment; list reads leave
// it nil.
type Consignment struct {
	// ConsignmentID is a UUID v7 generated on creation.
	ConsignmentID string `json:"consignment_id"`
	Name          string `json:"name"`
	// CreatedAt is set once at creation and never changes.
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Measurements []*Measurement `json:"measurements,omitempty"`
}

// Measurement is one (field name, text value) pair owned by exactly one
// consignment. FieldName is captured at creation and never changes,
// even if the source template is later renamed or deleted. Value is
// opaque text with no format constraint; empty is valid.
type Measurement struct {
	// MeasurementID is a UUID v7 generated on creation.
	MeasurementID string `json:"measurement_id"`
	// ConsignmentID is the owning consignment, required.
	ConsignmentID string `json:"consignment_id"`
	// TemplateID is empty for custom or detached fields.
	TemplateID string `json:"template_id,omitempty"`
	FieldName  string `json:"field_name"`
	Value      string `json:"value"`
	// Position is the insertion order within the consignment.
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Custom reports whether the measurement is a one-off field, either
// typed ad hoc at creation time or detached by a template deletion.
func (m *Measurement) Custom() bool {
	return m.TemplateID == ""
}

// Stats summarizes the system for the admin dashboard.
type Stats struct {
	Consignments       int            `json:"consignments"`
	FieldTemplates     int            `json:"field_templates"`
	Measurements       int            `json:"measurements"`
	RecentConsignments []*Consignment `json:"recent_consignments"` // Newest first, at most five.
}
