// Package types defines the entity types, component interfaces, and
// standard errors for the consign tracking system: the FieldTemplate
// registry, the consignment store, the measurement ledger, and the
// transactional writer that mutates them.
package types
