package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitScript_ModuleMigrations(t *testing.T) {
	script, err := BuildInitScript(MigrationsDir())
	require.NoError(t, err)
	assert.Contains(t, script, "CREATE TABLE IF NOT EXISTS evaluations")
	assert.NotContains(t, script, "DROP TABLE", "down migrations must not be applied")
}

func TestBuildInitScript_OrderAndTerminators(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.up.sql"), []byte("SELECT 2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.up.sql"), []byte("SELECT 1;\n"), 0o644))

	script, err := BuildInitScript(dir)
	require.NoError(t, err)

	assert.Less(t, strings.Index(script, "SELECT 1"), strings.Index(script, "SELECT 2"))
	assert.NotContains(t, script, ";;")
}

func TestBuildInitScript_Empty(t *testing.T) {
	_, err := BuildInitScript(t.TempDir())
	assert.Error(t, err)
}
