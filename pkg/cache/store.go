package cache

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fufuok/cmap"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/goosestudio/acficons/pkg/errors"
)

// Extension is the file extension of cached icon documents.
const Extension = ".svg"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is the sprite cache rooted at a single directory.
// A Store is safe for concurrent use.
type Store struct {
	fs    afero.Fs
	root  string
	locks *cmap.MapOf[string, *pathLock]
}

// pathLock is a mutex shared by every caller holding or waiting for the
// same cache path. refs is only touched under the map shard lock.
type pathLock struct {
	mu   sync.Mutex
	refs int
}

// Entry describes one cached file.
type Entry struct {
	Library string
	Name    string // file name including extension
	Path    string
	Size    int64
	ModTime time.Time
}

// New creates a Store on fsys rooted at root. A relative root is made
// absolute so that returned paths can be handed to other processes.
// The directory itself is created lazily.
func New(fsys afero.Fs, root string) *Store {
	if !filepath.IsAbs(root) {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	return &Store{
		fs:    fsys,
		root:  filepath.Clean(root),
		locks: cmap.NewOf[string, *pathLock](),
	}
}

// NewOS creates a Store on the host filesystem.
func NewOS(root string) *Store {
	return New(afero.NewOsFs(), root)
}

// Root returns the absolute cache root.
func (s *Store) Root() string { return s.root }

// Fs returns the filesystem the store writes to.
func (s *Store) Fs() afero.Fs { return s.fs }

// Dir returns the cache directory of a library.
func (s *Store) Dir(library string) string {
	return filepath.Join(s.root, library)
}

// Path returns the cache location for an icon.
func (s *Store) Path(library, id string) string {
	return filepath.Join(s.root, library, id+Extension)
}

// EnsureDir creates the library directory (and parents) if missing.
func (s *Store) EnsureDir(library string) error {
	dir := s.Dir(library)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrap(errors.ErrCodeCacheWrite, err, "create cache directory %s", dir)
	}
	return nil
}

// Exists reports whether a cache entry is present.
func (s *Store) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

// Read returns the contents of a cache entry.
func (s *Store) Read(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// WriteAtomic stores data at path by writing a temporary sibling and
// renaming it into place. No partial file is left behind on failure.
func (s *Store) WriteAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrap(errors.ErrCodeCacheWrite, err, "write %s", path)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrap(errors.ErrCodeCacheWrite, err, "rename into %s", path)
	}
	return nil
}

// Lock acquires the in-process lock for a cache path and returns the
// matching unlock function. The lock entry is dropped once its last holder
// or waiter unlocks.
func (s *Store) Lock(path string) (unlock func()) {
	pl := s.locks.Upsert(path, nil, func(exist bool, valueInMap, _ *pathLock) *pathLock {
		if !exist || valueInMap == nil {
			valueInMap = &pathLock{}
		}
		valueInMap.refs++
		return valueInMap
	})
	pl.mu.Lock()

	return func() {
		pl.mu.Unlock()
		s.locks.RemoveCb(path, func(_ string, v *pathLock, exists bool) bool {
			if !exists || v != pl {
				return false
			}
			v.refs--
			return v.refs == 0
		})
	}
}

// Entries lists cached files sorted by path. Temporary files are skipped.
// A missing root yields an empty list.
func (s *Store) Entries() ([]Entry, error) {
	if ok, err := afero.DirExists(s.fs, s.root); err != nil || !ok {
		return nil, err
	}

	var entries []Entry
	err := afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		library := ""
		if i := strings.IndexRune(rel, filepath.Separator); i > 0 {
			library = rel[:i]
		}
		entries = append(entries, Entry{
			Library: library,
			Name:    info.Name(),
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// Clear removes every cached file and the emptied library directories,
// keeping the root itself. It returns the number of files removed.
func (s *Store) Clear() (int, error) {
	if ok, err := afero.DirExists(s.fs, s.root); err != nil || !ok {
		return 0, err
	}

	var files, dirs []string
	err := afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if path == s.root {
			return nil
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	count := 0
	for _, f := range files {
		if err := s.fs.Remove(f); err == nil {
			count++
		}
	}
	// Deepest first so parents are empty when removed.
	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, d := range dirs {
		_ = s.fs.Remove(d)
	}
	return count, nil
}
