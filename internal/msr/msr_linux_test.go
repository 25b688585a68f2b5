//go:build linux

package msr

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDevice creates a fake msr device for thread holding 16 bytes:
// lo at offset 0 and hi at offset 8.
func writeDevice(t *testing.T, dir string, thread int, lo, hi uint64) {
	t.Helper()
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)
	sub := filepath.Join(dir, strconv.Itoa(thread))
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "msr"), buf, 0o644))
}

func TestDevMSRBackend_Read(t *testing.T) {
	dir := t.TempDir()
	writeDevice(t, dir, 2, 0x1122334455667788, 0x0000000000048890)

	b := NewBackend(filepath.Join(dir, "%d", "msr"))
	assert.Empty(t, b.Ioctls())

	h, err := b.Open(2)
	require.NoError(t, err)
	assert.NotZero(t, h.Fd())

	v, err := h.Read(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1122334455667788), v)

	v, err = h.Read(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x48890), v)
}

func TestDevMSRBackend_ShortRead(t *testing.T) {
	dir := t.TempDir()
	writeDevice(t, dir, 0, 1, 2)

	h, err := NewBackend(filepath.Join(dir, "%d", "msr")).Open(0)
	require.NoError(t, err)

	_, err = h.Read(12)
	assert.ErrorIs(t, err, ErrShortRead)
	assert.NotErrorIs(t, err, ErrRead)

	_, err = h.Read(4096)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestDevMSRBackend_OpenMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBackend(filepath.Join(dir, "%d", "msr")).Open(3)
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDevMSRBackend_ReadAfterClose(t *testing.T) {
	dir := t.TempDir()
	writeDevice(t, dir, 0, 1, 2)

	h, err := NewBackend(filepath.Join(dir, "%d", "msr")).Open(0)
	require.NoError(t, err)
	require.NoError(t, h.(*devHandle).f.Close())

	_, err = h.Read(0)
	assert.ErrorIs(t, err, ErrRead)
}
