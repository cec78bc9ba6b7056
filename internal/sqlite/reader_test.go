package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/consign/pkg/types"
)

func TestListConsignments(t *testing.T) {
	s := newTestStore(t)

	// Insert out of order to prove listing sorts by name.
	for _, name := range []string{"Zulu", "batch b", "Batch A", "alpha", "Batch C"} {
		_, err := s.CreateConsignment(admin, name, nil)
		require.NoError(t, err)
	}

	t.Run("ordered by name case-insensitive", func(t *testing.T) {
		all, err := s.ListConsignments("")
		require.NoError(t, err)
		require.Len(t, all, 5)

		names := make([]string, len(all))
		for i, c := range all {
			names[i] = c.Name
		}
		assert.Equal(t, []string{"alpha", "Batch A", "batch b", "Batch C", "Zulu"}, names)
	})

	t.Run("search narrows by substring case-insensitive", func(t *testing.T) {
		hits, err := s.ListConsignments("batch")
		require.NoError(t, err)
		require.Len(t, hits, 3)
		assert.Equal(t, "Batch A", hits[0].Name)
		assert.Equal(t, "batch b", hits[1].Name)
		assert.Equal(t, "Batch C", hits[2].Name)
	})

	t.Run("search with no hits returns empty", func(t *testing.T) {
		hits, err := s.ListConsignments("nothing-matches")
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("list does not hydrate measurements", func(t *testing.T) {
		all, err := s.ListConsignments("")
		require.NoError(t, err)
		for _, c := range all {
			assert.Nil(t, c.Measurements)
		}
	})
}

func TestGetConsignmentDetail(t *testing.T) {
	s := newTestStore(t)

	con, err := s.CreateConsignment(admin, "Batch A", []types.Selection{
		types.CustomSelection("thickness", "12mm"),
		types.CustomSelection("color", "navy"),
	})
	require.NoError(t, err)

	t.Run("returns measurements in insertion order", func(t *testing.T) {
		got, err := s.GetConsignmentDetail(con.ConsignmentID)
		require.NoError(t, err)
		assert.Equal(t, "Batch A", got.Name)
		require.Len(t, got.Measurements, 2)
		assert.Equal(t, 0, got.Measurements[0].Position)
		assert.Equal(t, 1, got.Measurements[1].Position)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := s.GetConsignmentDetail("no-such-id")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("empty id returns ErrInvalidID", func(t *testing.T) {
		_, err := s.GetConsignmentDetail("")
		assert.ErrorIs(t, err, types.ErrInvalidID)
	})
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

	t.Run("empty store", func(t *testing.T) {
		stats, err := s.Stats()
		require.NoError(t, err)
		assert.Zero(t, stats.Consignments)
		assert.Zero(t, stats.FieldTemplates)
		assert.Zero(t, stats.Measurements)
		assert.Empty(t, stats.RecentConsignments)
	})

	_, err := s.CreateTemplate(admin, "thickness")
	require.NoError(t, err)

	var last *types.Consignment
	for _, name := range []string{"one", "two", "three", "four", "five", "six"} {
		last, err = s.CreateConsignment(admin, name, []types.Selection{
			types.CustomSelection("notes", ""),
		})
		require.NoError(t, err)
	}

	t.Run("counts and recent list", func(t *testing.T) {
		stats, err := s.Stats()
		require.NoError(t, err)
		assert.Equal(t, 6, stats.Consignments)
		assert.Equal(t, 1, stats.FieldTemplates)
		assert.Equal(t, 6, stats.Measurements)

		require.Len(t, stats.RecentConsignments, 5)
		assert.Equal(t, last.ConsignmentID, stats.RecentConsignments[0].ConsignmentID,
			"newest consignment should lead the recent list")
	})
}
