// Package rulestore persists compact rule-set snapshots in a bbolt
// database, so a deployment can carry a newer public-suffix snapshot than
// the one compiled into the binary.
package rulestore

import (
	"encoding/binary"
	"time"

	bbolt "go.etcd.io/bbolt"
)

var (
	bucketRules = []byte("rules")
	bucketMeta  = []byte("meta")

	keyCompact = []byte("compact")
	keyVersion = []byte("version")
	keyUpdated = []byte("updated")
)

// Stats captures snapshot metadata and size for logging and inspection.
type Stats struct {
	Size        int // bytes of compact rule text, 0 when no snapshot is stored
	Version     uint64
	UpdatedUnix int64 // seconds since epoch
}

// Store is a bbolt-backed snapshot store. Safe for concurrent use; bbolt
// serializes writers internally.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRules); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketMeta)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Put atomically replaces the stored snapshot and its metadata.
func (s *Store) Put(rules string, version uint64, updatedUnix int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketRules).Put(keyCompact, []byte(rules)); err != nil {
			return err
		}
		meta := tx.Bucket(bucketMeta)
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, version)
		if err := meta.Put(keyVersion, buf); err != nil {
			return err
		}
		buf = make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(updatedUnix))
		return meta.Put(keyUpdated, buf)
	})
}

// Get returns the stored compact rule text. The second return value is
// false when the database holds no snapshot.
func (s *Store) Get() (string, bool, error) {
	var rules string
	var present bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRules)
		if b == nil {
			return nil
		}
		if v := b.Get(keyCompact); v != nil {
			rules = string(v)
			present = true
		}
		return nil
	})
	return rules, present, err
}

// Stats returns snapshot size and metadata. Missing entries read as zero.
func (s *Store) Stats() Stats {
	var st Stats
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketRules); b != nil {
			st.Size = len(b.Get(keyCompact))
		}
		if b := tx.Bucket(bucketMeta); b != nil {
			if v := b.Get(keyVersion); len(v) == 8 {
				st.Version = binary.BigEndian.Uint64(v)
			}
			if v := b.Get(keyUpdated); len(v) == 8 {
				st.UpdatedUnix = int64(binary.BigEndian.Uint64(v))
			}
		}
		return nil
	})
	return st
}
