package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates an up and down pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "create session carts")

		require.NoError(t, err)
		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
		assert.Contains(t, filepath.Base(mf.UpPath), "create_session_carts")
		assert.Len(t, mf.Version, 14)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(dir, "init")

		require.NoError(t, err)
		assert.DirExists(t, dir)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "create_table", "create_table"},
		{"spaces to underscores", "create session carts", "create_session_carts"},
		{"uppercase folded", "AddIndex", "addindex"},
		{"punctuation collapsed", "drop -- table!!", "drop_table"},
		{"trailing separator trimmed", "init ", "init"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.in))
		})
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists up files by base name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"000001_create_session_carts.up.sql",
			"000001_create_session_carts.down.sql",
			"000002_add_updated_at_index.up.sql",
			"000002_add_updated_at_index.down.sql",
			"notes.txt",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}

		migrations, err := ListMigrations(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"000001_create_session_carts",
			"000002_add_updated_at_index",
		}, migrations)
	})

	t.Run("missing directory lists as empty", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))

		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
