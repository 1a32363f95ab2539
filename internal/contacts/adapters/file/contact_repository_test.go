package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/contacts/adapters/file"
	"addressbook/internal/contacts/domain/entities"
)

func TestContactRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads empty", func(t *testing.T) {
		repo := file.NewContactRepository(filepath.Join(t.TempDir(), "absent.yaml"))

		records, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("save then load keeps order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "contacts.yaml")
		repo := file.NewContactRepository(path)

		records := []entities.RecordData{
			{Name: "Zed", Phones: []string{"0501234567"}, Birthday: "12.06.1990"},
			{Name: "Amy"},
			{Name: "Bob", Phones: []string{"0671234567", "0671234567"}},
		}
		require.NoError(t, repo.Save(ctx, records))

		loaded, err := file.NewContactRepository(path).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, records, loaded)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must be cleaned up")
		assert.NoError(t, repo.Close(ctx))
	})

	t.Run("save replaces previous state", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		repo := file.NewContactRepository(path)

		require.NoError(t, repo.Save(ctx, []entities.RecordData{{Name: "John"}, {Name: "Jane"}}))
		require.NoError(t, repo.Save(ctx, []entities.RecordData{{Name: "Jane"}}))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.RecordData{{Name: "Jane"}}, loaded)
	})

	t.Run("empty file loads empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		records, err := file.NewContactRepository(path).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.yaml")
		require.NoError(t, os.WriteFile(path, []byte("contacts: [\n"), 0o600))

		_, err := file.NewContactRepository(path).Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse contacts file")
	})
}
