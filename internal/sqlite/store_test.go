package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabline/consign/pkg/types"
)

// admin is the claim used by tests for mutating operations.
var admin = types.AdminClaim{Subject: "admin", IssuedAt: time.Now()}

// newTestStore opens a store on a fresh temp directory and closes it
// when the test finishes.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, s.Open(cfg))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreLifecycle(t *testing.T) {
	t.Run("open twice returns ErrAlreadyOpen", func(t *testing.T) {
		s := newTestStore(t)
		err := s.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyOpen)
	})

	t.Run("open rejects invalid config", func(t *testing.T) {
		s := NewStore()
		err := s.Open(types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
	})

	t.Run("operations on a closed store return ErrStoreClosed", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Close())

		_, err := s.ListTemplates()
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		_, err = s.ListConsignments("")
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		_, err = s.CreateConsignment(admin, "Batch A", nil)
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})

	t.Run("data survives close and reopen", func(t *testing.T) {
		dir := t.TempDir()
		cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

		s := NewStore()
		require.NoError(t, s.Open(cfg))
		con, err := s.CreateConsignment(admin, "Batch A", []types.Selection{
			types.CustomSelection("thickness", "12mm"),
		})
		require.NoError(t, err)
		require.NoError(t, s.Close())

		s2 := NewStore()
		require.NoError(t, s2.Open(cfg))
		defer s2.Close()

		got, err := s2.GetConsignmentDetail(con.ConsignmentID)
		require.NoError(t, err)
		assert.Equal(t, "Batch A", got.Name)
		require.Len(t, got.Measurements, 1)
		assert.Equal(t, "thickness", got.Measurements[0].FieldName)
		assert.Equal(t, "12mm", got.Measurements[0].Value)
	})
}

func TestMutationsRequireAdminClaim(t *testing.T) {
	s := newTestStore(t)
	var none types.AdminClaim

	_, err := s.CreateTemplate(none, "thickness")
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.ErrorIs(t, s.RenameTemplate(none, "id", "x"), types.ErrUnauthorized)
	assert.ErrorIs(t, s.DeleteTemplate(none, "id"), types.ErrUnauthorized)

	_, err = s.CreateConsignment(none, "Batch A", nil)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	_, err = s.AddMeasurement(none, "id", types.CustomSelection("notes", ""))
	assert.ErrorIs(t, err, types.ErrUnauthorized)
	assert.ErrorIs(t, s.EditMeasurement(none, "id", "v"), types.ErrUnauthorized)
	assert.ErrorIs(t, s.DeleteMeasurement(none, "id"), types.ErrUnauthorized)
	assert.ErrorIs(t, s.RenameConsignment(none, "id", "x"), types.ErrUnauthorized)
	assert.ErrorIs(t, s.DeleteConsignment(none, "id"), types.ErrUnauthorized)
}
