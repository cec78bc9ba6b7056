package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/consign/pkg/types"
)

func TestCreateTemplate(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.CreateTemplate(admin, "thickness")
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.TemplateID)
	assert.Equal(t, "thickness", tpl.Name)
	assert.False(t, tpl.CreatedAt.IsZero())

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := s.CreateTemplate(admin, "thickness")
		assert.ErrorIs(t, err, types.ErrDuplicateName)
	})

	t.Run("duplicate check is case-insensitive", func(t *testing.T) {
		_, err := s.CreateTemplate(admin, "Thickness")
		assert.ErrorIs(t, err, types.ErrDuplicateName)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := s.CreateTemplate(admin, "   ")
		assert.ErrorIs(t, err, types.ErrInvalidName)
	})
}

func TestListTemplates(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"weight", "shank_board", "Thickness"} {
		_, err := s.CreateTemplate(admin, name)
		require.NoError(t, err)
	}

	templates, err := s.ListTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 3)

	// Ordered by name, case-insensitive.
	assert.Equal(t, "shank_board", templates[0].Name)
	assert.Equal(t, "Thickness", templates[1].Name)
	assert.Equal(t, "weight", templates[2].Name)
}

func TestRenameTemplate(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.CreateTemplate(admin, "thickness")
	require.NoError(t, err)
	other, err := s.CreateTemplate(admin, "weight")
	require.NoError(t, err)

	t.Run("rename succeeds", func(t *testing.T) {
		require.NoError(t, s.RenameTemplate(admin, tpl.TemplateID, "board thickness"))
		templates, err := s.ListTemplates()
		require.NoError(t, err)
		assert.Equal(t, "board thickness", templates[0].Name)
	})

	t.Run("rename to own name succeeds", func(t *testing.T) {
		require.NoError(t, s.RenameTemplate(admin, tpl.TemplateID, "board thickness"))
	})

	t.Run("collision is rejected", func(t *testing.T) {
		err := s.RenameTemplate(admin, other.TemplateID, "Board Thickness")
		assert.ErrorIs(t, err, types.ErrDuplicateName)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		err := s.RenameTemplate(admin, "no-such-id", "anything")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("rename does not rewrite captured field names", func(t *testing.T) {
		con, err := s.CreateConsignment(admin, "Batch A", []types.Selection{
			types.TemplateSelection(tpl.TemplateID, "12mm"),
		})
		require.NoError(t, err)

		require.NoError(t, s.RenameTemplate(admin, tpl.TemplateID, "gauge"))

		got, err := s.GetConsignmentDetail(con.ConsignmentID)
		require.NoError(t, err)
		require.Len(t, got.Measurements, 1)
		assert.Equal(t, "board thickness", got.Measurements[0].FieldName)
	})
}

func TestDeleteTemplate(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.CreateTemplate(admin, "thickness")
	require.NoError(t, err)

	con, err := s.CreateConsignment(admin, "Batch A", []types.Selection{
		types.TemplateSelection(tpl.TemplateID, "12mm"),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTemplate(admin, tpl.TemplateID))

	t.Run("template is gone from the registry", func(t *testing.T) {
		templates, err := s.ListTemplates()
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("referencing measurement keeps name and value", func(t *testing.T) {
		got, err := s.GetConsignmentDetail(con.ConsignmentID)
		require.NoError(t, err)
		require.Len(t, got.Measurements, 1)
		m := got.Measurements[0]
		assert.Equal(t, "thickness", m.FieldName)
		assert.Equal(t, "12mm", m.Value)
		assert.True(t, m.Custom(), "detached measurement should read as custom")
	})

	t.Run("repeat delete returns ErrNotFound", func(t *testing.T) {
		err := s.DeleteTemplate(admin, tpl.TemplateID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
