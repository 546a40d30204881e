package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-long/jupyterlab-fitsview/internal/models"
)

func TestDir_Resolve(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.fits"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.fits"), []byte("x"), 0o644))

	d := NewDir(root)
	ctx := context.Background()

	got, err := d.Resolve(ctx, "a.fits")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a.fits"), got)

	got, err = d.Resolve(ctx, "sub/b.fits")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub", "b.fits"), got)
}

func TestDir_Resolve_NotFound(t *testing.T) {
	d := NewDir(t.TempDir())

	_, err := d.Resolve(context.Background(), "nonexistent.fits")
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "nonexistent.fits")
}

func TestDir_Resolve_DirectoryIsNotAFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))

	_, err := NewDir(root).Resolve(context.Background(), "sub")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDir_Resolve_TraversalStaysInRoot(t *testing.T) {
	outer := t.TempDir()
	root := filepath.Join(outer, "root")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, "secret.fits"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "ok.fits"), []byte("x"), 0o644))

	d := NewDir(root)
	ctx := context.Background()

	// ".." прижимается к корню и наружу не выводит.
	_, err := d.Resolve(ctx, "../secret.fits")
	assert.ErrorIs(t, err, models.ErrNotFound)

	got, err := d.Resolve(ctx, "../ok.fits")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "ok.fits"), got)
}

func TestDir_Resolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDir(t.TempDir()).Resolve(ctx, "a.fits")
	assert.ErrorIs(t, err, context.Canceled)
}
