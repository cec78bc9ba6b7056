package types

import "errors"

// Store is the backend-agnostic entry point for consignment storage.
// Callers open a store with a Config, use the component contracts, and
// close it when done.
type Store interface {
	// Open connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyOpen
	// if called while already open.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls
	// succeed. After Close, all operations return ErrStoreClosed.
	Close() error

	Registry
	Writer
	Reader
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)

// Entity operation errors. Every Registry, Writer, and Reader operation
// surfaces one of these synchronously; nothing retries.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrDuplicateName    = errors.New("name already registered")
	ErrInvalidSelection = errors.New("selection must name a template or a custom field, not both")
	ErrInvalidID        = errors.New("invalid entity ID")
	ErrInvalidName      = errors.New("invalid name")
	ErrUnauthorized     = errors.New("admin session required")
)

// Registry is the reusable field library. Templates are independent of
// any consignment: deleting one detaches referencing measurements but
// never removes them.
type Registry interface {
	// ListTemplates returns all field templates ordered by name,
	// case-insensitive ascending.
	ListTemplates() ([]*FieldTemplate, error)

	// CreateTemplate registers a new field name. Returns
	// ErrDuplicateName if the name (case-insensitive) is taken and
	// ErrInvalidName if it is empty.
	CreateTemplate(claim AdminClaim, name string) (*FieldTemplate, error)

	// RenameTemplate changes a template's name. Measurements that
	// captured the old name keep it. Returns ErrNotFound if the id is
	// absent and ErrDuplicateName on collision.
	RenameTemplate(claim AdminClaim, id, newName string) error

	// DeleteTemplate removes a template and detaches any measurements
	// referencing it in the same transaction. Captured field names and
	// values are untouched. Returns ErrNotFound if the id is absent.
	DeleteTemplate(claim AdminClaim, id string) error
}

// Writer is the sole entry point for consignment and measurement
// mutations. Multi-row operations are atomic: a failed create or
// cascading delete leaves zero rows behind.
type Writer interface {
	// CreateConsignment creates a consignment and one measurement per
	// selection in a single transaction. Selections resolve in input
	// order, which fixes measurement order for detail views. If any
	// selection fails to resolve, nothing is persisted. Returns the
	// consignment with its measurements attached.
	CreateConsignment(claim AdminClaim, name string, selections []Selection) (*Consignment, error)

	// AddMeasurement resolves a single selection against an existing
	// consignment and appends the measurement. Returns ErrNotFound if
	// the consignment does not exist.
	AddMeasurement(claim AdminClaim, consignmentID string, sel Selection) (*Measurement, error)

	// EditMeasurement replaces a measurement's value in place.
	// Returns ErrNotFound if the id is absent.
	EditMeasurement(claim AdminClaim, measurementID, newValue string) error

	// DeleteMeasurement removes a single measurement. Deleting a
	// missing id returns ErrNotFound rather than silently succeeding.
	DeleteMeasurement(claim AdminClaim, measurementID string) error

	// RenameConsignment changes a consignment's name. Returns
	// ErrNotFound if the id is absent and ErrInvalidName if the new
	// name is empty.
	RenameConsignment(claim AdminClaim, id, newName string) error

	// DeleteConsignment removes a consignment and all its measurements
	// in the same transaction. No orphan measurements remain after a
	// successful delete.
	DeleteConsignment(claim AdminClaim, id string) error
}

// Reader is the pure query path. No claim is required; it exposes no
// mutation capability.
type Reader interface {
	// ListConsignments returns all consignments ordered by name,
	// case-insensitive ascending. A non-empty search narrows the list
	// to names containing the query (case-insensitive). Measurements
	// are not hydrated.
	ListConsignments(search string) ([]*Consignment, error)

	// GetConsignmentDetail returns a consignment with all its
	// measurements in stored insertion order. Returns ErrNotFound if
	// the id is absent.
	GetConsignmentDetail(id string) (*Consignment, error)

	// Stats returns entity counts and the most recently created
	// consignments for the admin dashboard.
	Stats() (*Stats, error)
}
