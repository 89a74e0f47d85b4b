// Package cache persists the last fetched gallery lists in a local BoltDB
// file so the app can start warm before the first fetch returns. It is
// best-effort: the gallery store logs and ignores cache failures.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ewilde/lumen/internal/domain"
)

// Bucket names
var (
	bucketPhotos      = []byte("photos")
	bucketCollections = []byte("collections")
)

const snapshotKey = "snapshot"

// SnapshotCache implements domain.SnapshotStore using BoltDB, with an
// in-memory copy promoted on access so repeated reads skip the disk.
type SnapshotCache struct {
	db *bolt.DB
	mu sync.RWMutex

	memory map[string][]byte
}

// Open creates or opens the snapshot cache under baseDir. An empty baseDir
// yields a memory-only cache with no persistence. serverURL scopes the db
// file so switching servers never serves stale data.
func Open(baseDir, serverURL string) (*SnapshotCache, error) {
	if baseDir == "" {
		return &SnapshotCache{memory: make(map[string][]byte)}, nil
	}

	dir := baseDir
	if serverURL != "" {
		dir = filepath.Join(baseDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "lumen.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPhotos, bucketCollections} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SnapshotCache{db: db, memory: make(map[string][]byte)}, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// Close releases the underlying database
func (c *SnapshotCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// SavePhotos stores the photo snapshot
func (c *SnapshotCache) SavePhotos(photos []domain.Photo) error {
	return c.set(bucketPhotos, photos)
}

// SaveCollections stores the collection snapshot
func (c *SnapshotCache) SaveCollections(collections []domain.Collection) error {
	return c.set(bucketCollections, collections)
}

// GetPhotos returns the stored photo snapshot, if one exists
func (c *SnapshotCache) GetPhotos() ([]domain.Photo, bool) {
	var photos []domain.Photo
	if !c.get(bucketPhotos, &photos) {
		return nil, false
	}
	return photos, true
}

// GetCollections returns the stored collection snapshot, if one exists
func (c *SnapshotCache) GetCollections() ([]domain.Collection, bool) {
	var collections []domain.Collection
	if !c.get(bucketCollections, &collections) {
		return nil, false
	}
	return collections, true
}

// Invalidate drops both snapshots
func (c *SnapshotCache) Invalidate() error {
	c.mu.Lock()
	c.memory = make(map[string][]byte)
	c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPhotos, bucketCollections} {
			b := tx.Bucket(bucket)
			if b == nil {
				continue
			}
			if err := b.Delete([]byte(snapshotKey)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *SnapshotCache) get(bucket []byte, dest interface{}) bool {
	memKey := string(bucket)

	c.mu.RLock()
	if data, ok := c.memory[memKey]; ok {
		c.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	c.mu.RUnlock()

	if c.db == nil {
		return false
	}

	var data []byte
	c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(snapshotKey)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to the memory copy
	c.mu.Lock()
	c.memory[memKey] = data
	c.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (c *SnapshotCache) set(bucket []byte, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.memory[string(bucket)] = data
	c.mu.Unlock()

	if c.db == nil {
		return nil // Memory-only mode
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(snapshotKey), data)
	})
}
