// Package journal persists the first sighting of every queried name in a
// bolt database. A bloom filter sits in front of the database so the common
// case, a name seen before, skips the write transaction entirely.
package journal

import (
	"encoding/binary"
	"sync"
	"time"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
	bbolt "go.etcd.io/bbolt"

	"github.com/rgdns/rgdns/internal/dns/common/utils"
)

var bucketNames = []byte("names")

// Expected distinct names and acceptable false-positive rate for sizing the
// bloom filter. A false positive only suppresses a journal entry.
const (
	bloomEstimate = 100_000
	bloomFPRate   = 0.01
)

// Journal records the first time each canonical query name is seen.
type Journal struct {
	db *bbolt.DB

	// mu serializes bloom filter writes; Test is safe concurrently with
	// other Tests but not with Add.
	mu   sync.RWMutex
	seen *bitsbloom.BloomFilter
}

// Open opens (or creates) the journal database at path, ensures the names
// bucket exists, and warms the bloom filter from the existing entries.
func Open(path string) (*Journal, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	seen := bitsbloom.NewWithEstimates(bloomEstimate, bloomFPRate)
	if err := db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketNames)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, _ []byte) error {
			seen.Add(k)
			return nil
		})
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{db: db, seen: seen}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record notes that name was queried and reports whether this is its first
// sighting. Names are canonicalized before storage, so lookups are
// case-insensitive.
func (j *Journal) Record(name string) (bool, error) {
	key := []byte(utils.CanonicalDNSName(name))

	j.mu.RLock()
	known := j.seen.Test(key)
	j.mu.RUnlock()
	if known {
		return false, nil
	}

	first := false
	err := j.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketNames)
		if b.Get(key) != nil {
			return nil
		}
		first = true
		var ts [8]byte
		binary.BigEndian.PutUint64(ts[:], uint64(time.Now().Unix()))
		return b.Put(key, ts[:])
	})
	if err != nil {
		return false, err
	}

	j.mu.Lock()
	j.seen.Add(key)
	j.mu.Unlock()

	return first, nil
}

// Len returns the number of distinct names recorded.
func (j *Journal) Len() (int, error) {
	var n int
	err := j.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketNames).Stats().KeyN
		return nil
	})
	return n, err
}
