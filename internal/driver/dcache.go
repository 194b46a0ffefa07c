package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"nyanfmt/internal/project"
)

// Current schema version - increment when CanonicalRecord format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache запоминает содержимое, которое уже в канонической форме, чтобы
// fmt --check и повторные запуски пропускали неизменённые файлы.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CanonicalRecord is stored per content key.
type CanonicalRecord struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path    string // last path seen with this content, informational
	Size    int
	Checked time.Time
}

// OpenDiskCache initializes a disk cache rooted at dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		return nil, errors.New("cache: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "canon", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a record to the disk cache.
func (c *DiskCache) Put(key project.Digest, rec *CanonicalRecord) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		// после успешного Rename файла уже нет
		_ = os.Remove(tmp)
	}()

	stored := *rec
	stored.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(&stored); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads a record. A record of another schema counts as a miss.
func (c *DiskCache) Get(key project.Digest) (CanonicalRecord, bool, error) {
	if c == nil {
		return CanonicalRecord{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CanonicalRecord{}, false, nil
		}
		return CanonicalRecord{}, false, err
	}
	var rec CanonicalRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return CanonicalRecord{}, false, err
	}
	if rec.Schema != diskCacheSchemaVersion {
		return CanonicalRecord{}, false, nil
	}
	return rec, true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
