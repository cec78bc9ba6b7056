// Package sqlite implements the SQLite storage backend for consign:
// the field template registry, the consignment writer, and the read
// path, backed by three relations with transactional cascade rules.
package sqlite

// Schema DDL. Measurement ownership cascades with the consignment;
// the template back-reference is nullable and never cascades, so a
// deleted template leaves its measurements' captured field names
// intact.
const (
	createFieldTemplates = `CREATE TABLE IF NOT EXISTS field_templates (
    template_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    created_at TEXT NOT NULL
);`

	createConsignments = `CREATE TABLE IF NOT EXISTS consignments (
    consignment_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createMeasurements = `CREATE TABLE IF NOT EXISTS measurements (
    measurement_id TEXT PRIMARY KEY,
    consignment_id TEXT NOT NULL,
    field_template_id TEXT,
    field_name TEXT NOT NULL,
    value TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (consignment_id) REFERENCES consignments(consignment_id) ON DELETE CASCADE,
    FOREIGN KEY (field_template_id) REFERENCES field_templates(template_id)
);`
)

// Index DDL for common queries: alphabetical listing, detail hydration,
// and template detachment.
const (
	idxConsignmentsName     = `CREATE INDEX IF NOT EXISTS idx_consignments_name ON consignments(name COLLATE NOCASE);`
	idxMeasurementsOwner    = `CREATE INDEX IF NOT EXISTS idx_measurements_owner ON measurements(consignment_id, position);`
	idxMeasurementsTemplate = `CREATE INDEX IF NOT EXISTS idx_measurements_template ON measurements(field_template_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFieldTemplates,
	createConsignments,
	createMeasurements,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxConsignmentsName,
	idxMeasurementsOwner,
	idxMeasurementsTemplate,
}
