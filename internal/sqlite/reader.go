// Read path: pure queries over consignments and measurements. Listing
// is ordered by name using SQLite's NOCASE collation, so "batch b"
// sorts between "Batch A" and "Batch C" regardless of case.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/fabline/consign/pkg/types"
)

// recentLimit caps the dashboard's recent-consignments list.
const recentLimit = 5

// ListConsignments returns all consignments ordered by name,
// case-insensitive ascending, ties broken by id for stable output.
// A non-empty search narrows the list to names containing the query,
// case-insensitive. Measurements are not hydrated.
func (s *Store) ListConsignments(search string) ([]*types.Consignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	query := "SELECT consignment_id, name, created_at, updated_at FROM consignments"
	var args []any
	if search != "" {
		// LIKE is case-insensitive for ASCII in SQLite, matching the
		// NOCASE list collation.
		query += " WHERE name LIKE ?"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY name COLLATE NOCASE ASC, consignment_id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing consignments: %w", err)
	}
	defer rows.Close()

	return collectConsignments(rows)
}

// GetConsignmentDetail returns a consignment with all its measurements
// in stored insertion order. Returns ErrNotFound if the id is absent.
func (s *Store) GetConsignmentDetail(id string) (*types.Consignment, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	con, err := s.getConsignment(id)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateMeasurements(con); err != nil {
		return nil, err
	}
	return con, nil
}

// Stats returns entity counts and the most recently created
// consignments, newest first.
func (s *Store) Stats() (*types.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	stats := &types.Stats{}
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM consignments", &stats.Consignments},
		{"SELECT COUNT(*) FROM field_templates", &stats.FieldTemplates},
		{"SELECT COUNT(*) FROM measurements", &stats.Measurements},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("counting entities: %w", err)
		}
	}

	rows, err := s.db.Query(
		"SELECT consignment_id, name, created_at, updated_at FROM consignments ORDER BY created_at DESC, consignment_id DESC LIMIT ?",
		recentLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent consignments: %w", err)
	}
	defer rows.Close()

	recent, err := collectConsignments(rows)
	if err != nil {
		return nil, err
	}
	stats.RecentConsignments = recent
	return stats, nil
}

// getConsignment hydrates one consignments row without measurements.
// The caller must hold s.mu.
func (s *Store) getConsignment(id string) (*types.Consignment, error) {
	var con types.Consignment
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		"SELECT consignment_id, name, created_at, updated_at FROM consignments WHERE consignment_id = ?",
		id,
	).Scan(&con.ConsignmentID, &con.Name, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("consignment %s: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting consignment %s: %w", id, err)
	}
	if con.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if con.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &con, nil
}

// hydrateMeasurements attaches a consignment's measurements in position
// order. The caller must hold s.mu.
func (s *Store) hydrateMeasurements(con *types.Consignment) error {
	rows, err := s.db.Query(
		`SELECT measurement_id, consignment_id, field_template_id, field_name, value, position, created_at, updated_at
    FROM measurements WHERE consignment_id = ? ORDER BY position ASC`,
		con.ConsignmentID,
	)
	if err != nil {
		return fmt.Errorf("listing measurements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m types.Measurement
		var templateID sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(
			&m.MeasurementID, &m.ConsignmentID, &templateID, &m.FieldName,
			&m.Value, &m.Position, &createdAt, &updatedAt,
		); err != nil {
			return fmt.Errorf("scanning measurement: %w", err)
		}
		m.TemplateID = templateID.String
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return err
		}
		if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return err
		}
		con.Measurements = append(con.Measurements, &m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("listing measurements: %w", err)
	}
	return nil
}

// collectConsignments scans consignment rows without measurements.
func collectConsignments(rows *sql.Rows) ([]*types.Consignment, error) {
	var result []*types.Consignment
	for rows.Next() {
		var con types.Consignment
		var createdAt, updatedAt string
		if err := rows.Scan(&con.ConsignmentID, &con.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning consignment: %w", err)
		}
		var err error
		if con.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if con.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		result = append(result, &con)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning consignments: %w", err)
	}
	return result, nil
}
