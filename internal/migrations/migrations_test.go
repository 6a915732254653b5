package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceURL(t *testing.T) {
	dir := t.TempDir()

	got, err := SourceURL(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "file://"))
	assert.True(t, strings.HasSuffix(got, filepath.ToSlash(dir)))
}

func TestSourceURL_Relative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := SourceURL(DefaultDir)
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(wd, DefaultDir)), got)
}

func TestUp_InvalidDatabaseURL(t *testing.T) {
	err := Up("notascheme://nowhere", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create migrate instance")
}
