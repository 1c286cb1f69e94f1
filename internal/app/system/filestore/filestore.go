// Package filestore saves uploaded documents and hands back the
// store-relative key recorded on the owning record (e.g. "uploads/1717171717171.pdf").
package filestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
)

// Store is the subset of storage.Store that document uploads use.
// *storage.Local and *MinIO satisfy it.
type Store interface {
	Put(ctx context.Context, path string, r io.Reader, opts *storage.PutOptions) error
	Exists(ctx context.Context, path string) (bool, error)
	Delete(ctx context.Context, path string) error
}

// NewLocal returns a disk store rooted at root. Keys are paths below root.
func NewLocal(root string) (*storage.Local, error) {
	return storage.NewLocal(storage.LocalConfig{BasePath: root})
}

// Namer issues "<unix-millis><ext>" file names. Millisecond stamps are
// strictly increasing within a process, so uploads handled in the same
// millisecond still get distinct names.
type Namer struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewNamer returns a Namer using the wall clock.
func NewNamer() *Namer {
	return &Namer{now: time.Now}
}

// Next returns dir/<stamp><ext> where ext is taken from original.
func (n *Namer) Next(dir, original string) string {
	n.mu.Lock()
	ms := n.now().UnixMilli()
	if ms <= n.last {
		ms = n.last + 1
	}
	n.last = ms
	n.mu.Unlock()
	return path.Join(dir, strconv.FormatInt(ms, 10)+cleanExt(original))
}

// cleanExt returns the extension of a client-supplied filename, dropping it
// when it holds anything but letters, digits, '-' or '_'.
func cleanExt(filename string) string {
	filename = filename[strings.LastIndexAny(filename, `/\`)+1:]
	ext := path.Ext(filename)
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for i := 1; i < len(ext); i++ {
		c := ext[i]
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '-' || c == '_'
		if !ok {
			return ""
		}
	}
	return ext
}

const maxNameAttempts = 5

// Upload stores r under a fresh name in dir and returns its key. Names
// already present in s are skipped.
func Upload(ctx context.Context, s Store, n *Namer, dir, filename string, r io.Reader, contentType string) (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		key := n.Next(dir, filename)
		taken, err := s.Exists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", filename, err)
		}
		if taken {
			continue
		}
		if err := s.Put(ctx, key, r, &storage.PutOptions{ContentType: contentType}); err != nil {
			return "", fmt.Errorf("upload %s: %w", filename, err)
		}
		return key, nil
	}
	return "", fmt.Errorf("upload %s: no free name after %d attempts", filename, maxNameAttempts)
}
