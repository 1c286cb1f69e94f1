package filestore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNamer(t time.Time) *Namer {
	return &Namer{now: func() time.Time { return t }}
}

func TestNamer_StrictlyIncreasing(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)
	n := fixedNamer(at)

	first := n.Next("uploads", "cv.pdf")
	second := n.Next("uploads", "cv.pdf")

	assert.Equal(t, "uploads/1700000000000.pdf", first)
	assert.Equal(t, "uploads/1700000000001.pdf", second)
}

func TestNamer_ClockGoingBackwards(t *testing.T) {
	at := time.UnixMilli(5000)
	n := fixedNamer(at)
	assert.Equal(t, "uploads/5000.png", n.Next("uploads", "a.png"))

	n.now = func() time.Time { return time.UnixMilli(4000) }
	assert.Equal(t, "uploads/5001.png", n.Next("uploads", "a.png"))
}

func TestCleanExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"transcript.pdf", ".pdf"},
		{"photo.JPEG", ".JPEG"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"dir/evil.p$p", ""},
		{`C:\docs\scan.png`, ".png"},
		{"trailing.", ""},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanExt(tt.in))
		})
	}
}

type memStore struct {
	objects map[string]string
	types   map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]string{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key string, r io.Reader, opts *storage.PutOptions) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = string(b)
	if opts != nil {
		m.types[key] = opts.ContentType
	}
	return nil
}

func (m *memStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func TestUpload_SkipsTakenNames(t *testing.T) {
	s := newMemStore()
	s.objects["uploads/42.pdf"] = "old"
	n := fixedNamer(time.UnixMilli(42))

	key, err := Upload(context.Background(), s, n, "uploads", "id.pdf", strings.NewReader("new"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "uploads/43.pdf", key)
	assert.Equal(t, "new", s.objects[key])
	assert.Equal(t, "application/pdf", s.types[key])
	assert.Equal(t, "old", s.objects["uploads/42.pdf"])
}

func TestUpload_GivesUpWhenEveryNameIsTaken(t *testing.T) {
	s := newMemStore()
	for ms := 7; ms < 7+maxNameAttempts; ms++ {
		s.objects["uploads/"+strconv.Itoa(ms)+".pdf"] = "taken"
	}
	n := fixedNamer(time.UnixMilli(7))

	_, err := Upload(context.Background(), s, n, "uploads", "id.pdf", strings.NewReader("new"), "")
	assert.Error(t, err)
}

func TestUpload_LocalDisk(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := NewLocal(root)
	require.NoError(t, err)
	n := fixedNamer(time.UnixMilli(1000))

	key, err := Upload(ctx, s, n, "uploads", "transcript.pdf", strings.NewReader("hello"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "uploads/1000.pdf", key)

	b, err := os.ReadFile(filepath.Join(root, "uploads", "1000.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	taken, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, s.Delete(ctx, key))
	taken, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, taken)
}
