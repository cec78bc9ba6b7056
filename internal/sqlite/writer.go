// Consignment writer: the transactional boundary for all consignment
// and measurement mutations. Multi-row operations are all-or-nothing;
// a failed create or cascading delete persists zero rows.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fabline/consign/pkg/types"
)

// CreateConsignment creates one consignment row and one measurement row
// per selection in a single transaction. Selections resolve in input
// order; that order fixes each measurement's position and is preserved
// by detail reads. If any selection fails to resolve, nothing is
// persisted. Returns the consignment with its measurements attached.
func (s *Store) CreateConsignment(claim types.AdminClaim, name string, selections []types.Selection) (*types.Consignment, error) {
	if err := requireAdmin(claim); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	con := &types.Consignment{
		ConsignmentID: newUUID(),
		Name:          name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO consignments (consignment_id, name, created_at, updated_at) VALUES (?, ?, ?, ?)",
		con.ConsignmentID, con.Name, formatTime(con.CreatedAt), formatTime(con.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("creating consignment: %w", err)
	}

	for i, sel := range selections {
		m, err := insertMeasurement(tx, con.ConsignmentID, sel, i, now)
		if err != nil {
			return nil, err
		}
		con.Measurements = append(con.Measurements, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing consignment: %w", err)
	}
	return con, nil
}

// AddMeasurement resolves a single selection against an existing
// consignment and appends the measurement after its current ones.
// Returns ErrNotFound if the consignment does not exist.
func (s *Store) AddMeasurement(claim types.AdminClaim, consignmentID string, sel types.Selection) (*types.Measurement, error) {
	if err := requireAdmin(claim); err != nil {
		return nil, err
	}
	if consignmentID == "" {
		return nil, types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRow(
		"SELECT 1 FROM consignments WHERE consignment_id = ?", consignmentID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("consignment %s: %w", consignmentID, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checking consignment: %w", err)
	}

	var next int
	err = tx.QueryRow(
		"SELECT COALESCE(MAX(position) + 1, 0) FROM measurements WHERE consignment_id = ?",
		consignmentID,
	).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("computing position: %w", err)
	}

	now := time.Now().UTC()
	m, err := insertMeasurement(tx, consignmentID, sel, next, now)
	if err != nil {
		return nil, err
	}
	if err := touchConsignment(tx, consignmentID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing measurement: %w", err)
	}
	return m, nil
}

// EditMeasurement replaces a measurement's value in place. The captured
// field name never changes. Returns ErrNotFound if the id is absent.
func (s *Store) EditMeasurement(claim types.AdminClaim, measurementID, newValue string) error {
	if err := requireAdmin(claim); err != nil {
		return err
	}
	if measurementID == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE measurements SET value = ?, updated_at = ? WHERE measurement_id = ?",
		newValue, formatTime(time.Now()), measurementID,
	)
	if err != nil {
		return fmt.Errorf("editing measurement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("editing measurement: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("measurement %s: %w", measurementID, types.ErrNotFound)
	}
	return nil
}

// DeleteMeasurement removes a single measurement. Deleting a missing id
// returns ErrNotFound rather than silently succeeding.
func (s *Store) DeleteMeasurement(claim types.AdminClaim, measurementID string) error {
	if err := requireAdmin(claim); err != nil {
		return err
	}
	if measurementID == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM measurements WHERE measurement_id = ?", measurementID)
	if err != nil {
		return fmt.Errorf("deleting measurement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting measurement: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("measurement %s: %w", measurementID, types.ErrNotFound)
	}
	return nil
}

// RenameConsignment changes a consignment's name. Returns ErrNotFound
// if the id is absent and ErrInvalidName if the new name is empty.
func (s *Store) RenameConsignment(claim types.AdminClaim, id, newName string) error {
	if err := requireAdmin(claim); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return types.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE consignments SET name = ?, updated_at = ? WHERE consignment_id = ?",
		newName, formatTime(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("renaming consignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming consignment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("consignment %s: %w", id, types.ErrNotFound)
	}
	return nil
}

// DeleteConsignment removes a consignment and all its measurements in
// the same transaction. No orphan measurements remain after a
// successful delete. Returns ErrNotFound if the id is absent.
func (s *Store) DeleteConsignment(claim types.AdminClaim, id string) error {
	if err := requireAdmin(claim); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM measurements WHERE consignment_id = ?", id); err != nil {
		return fmt.Errorf("deleting measurements: %w", err)
	}

	res, err := tx.Exec("DELETE FROM consignments WHERE consignment_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting consignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting consignment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("consignment %s: %w", id, types.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing consignment deletion: %w", err)
	}
	return nil
}

// insertMeasurement resolves one selection and inserts the measurement
// row inside the caller's transaction. A template selection captures
// the template's current name; a custom selection captures the typed
// name. An absent value is stored as the empty string.
func insertMeasurement(tx *sql.Tx, consignmentID string, sel types.Selection, position int, now time.Time) (*types.Measurement, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	m := &types.Measurement{
		MeasurementID: newUUID(),
		ConsignmentID: consignmentID,
		Value:         sel.Value,
		Position:      position,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var templateID any
	if sel.TemplateID != "" {
		var name string
		err := tx.QueryRow(
			"SELECT name FROM field_templates WHERE template_id = ?", sel.TemplateID,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template %s: %w", sel.TemplateID, types.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("resolving template: %w", err)
		}
		m.TemplateID = sel.TemplateID
		m.FieldName = name
		templateID = sel.TemplateID
	} else {
		m.FieldName = strings.TrimSpace(sel.FieldName)
		if m.FieldName == "" {
			return nil, types.ErrInvalidSelection
		}
		templateID = nil
	}

	_, err := tx.Exec(
		`INSERT INTO measurements
    (measurement_id, consignment_id, field_template_id, field_name, value, position, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MeasurementID, m.ConsignmentID, templateID, m.FieldName, m.Value, m.Position,
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting measurement: %w", err)
	}
	return m, nil
}

// touchConsignment bumps a consignment's updated_at inside the caller's
// transaction.
func touchConsignment(tx *sql.Tx, id string, now time.Time) error {
	if _, err := tx.Exec(
		"UPDATE consignments SET updated_at = ? WHERE consignment_id = ?",
		formatTime(now), id,
	); err != nil {
		return fmt.Errorf("touching consignment: %w", err)
	}
	return nil
}
