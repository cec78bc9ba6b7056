// Field template registry operations: the reusable library of field
// names offered when composing a consignment.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fabline/consign/pkg/types"
)

// ListTemplates returns all field templates ordered by name,
// case-insensitive ascending, ties broken by id for stable output.
func (s *Store) ListTemplates() ([]*types.FieldTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT template_id, name, created_at FROM field_templates ORDER BY name COLLATE NOCASE ASC, template_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*types.FieldTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return templates, nil
}

// CreateTemplate registers a new field name in the library.
// Returns ErrDuplicateName if the name is already registered
// (case-insensitive) and ErrInvalidName if it is empty.
func (s *Store) CreateTemplate(claim types.AdminClaim, name string) (*types.FieldTemplate, error) {
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

	taken, err := s.templateNameTaken(name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("template %q: %w", name, types.ErrDuplicateName)
	}

	tpl := &types.FieldTemplate{
		TemplateID: newUUID(),
		Name:       name,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = s.db.Exec(
		"INSERT INTO field_templates (template_id, name, created_at) VALUES (?, ?, ?)",
		tpl.TemplateID, tpl.Name, formatTime(tpl.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	return tpl, nil
}

// RenameTemplate changes a template's name. Existing measurements keep
// the name they captured at creation. Returns ErrNotFound if the id is
// absent and ErrDuplicateName on a case-insensitive collision.
func (s *Store) RenameTemplate(claim types.AdminClaim, id, newName string) error {
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

	taken, err := s.templateNameTaken(newName, id)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("template %q: %w", newName, types.ErrDuplicateName)
	}

	res, err := s.db.Exec(
		"UPDATE field_templates SET name = ? WHERE template_id = ?",
		newName, id,
	)
	if err != nil {
		return fmt.Errorf("renaming template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming template: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("template %s: %w", id, types.ErrNotFound)
	}
	return nil
}

// DeleteTemplate removes a template from the library. Measurements
// referencing it are detached (back-reference nulled) in the same
// transaction; their captured field names and values are untouched.
// Returns ErrNotFound if the id is absent.
func (s *Store) DeleteTemplate(claim types.AdminClaim, id string) error {
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

	// Detach first so the delete never breaks a captured field name.
	if _, err := tx.Exec(
		"UPDATE measurements SET field_template_id = NULL WHERE field_template_id = ?", id,
	); err != nil {
		return fmt.Errorf("detaching measurements: %w", err)
	}

	res, err := tx.Exec("DELETE FROM field_templates WHERE template_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("template %s: %w", id, types.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template deletion: %w", err)
	}
	return nil
}

// templateNameTaken reports whether a template other than excludeID
// already uses name (case-insensitive). The caller must hold s.mu.
func (s *Store) templateNameTaken(name, excludeID string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM field_templates WHERE name = ? COLLATE NOCASE AND template_id != ?",
		name, excludeID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking template name: %w", err)
	}
	return true, nil
}

// scanTemplate hydrates one field_templates row.
func scanTemplate(rows *sql.Rows) (*types.FieldTemplate, error) {
	var tpl types.FieldTemplate
	var createdAt string
	if err := rows.Scan(&tpl.TemplateID, &tpl.Name, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning template: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	tpl.CreatedAt = t
	return &tpl, nil
}
