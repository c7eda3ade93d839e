// internal/store/store.go

// Package store persists batch partition outcomes in an embedded bolt
// database so interrupted batch runs can resume without recomputing.
package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"dompart/pkg/api"
)

var bucketOutcomes = []byte("outcomes")

// Store wraps one bolt database of v1 partition documents keyed by
// sequence id.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open outcome store: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketOutcomes)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init outcome store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put stores one outcome under its sequence id.
func (s *Store) Put(v api.PartitionV1) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutcomes).Put([]byte(v.SequenceID), data)
	})
}

// Get fetches one outcome; ok is false when the id is unknown.
func (s *Store) Get(sequenceID string) (v api.PartitionV1, ok bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketOutcomes).Get([]byte(sequenceID))
		if data == nil {
			return nil
		}
		ok = true
		return json.Unmarshal(data, &v)
	})
	return v, ok, err
}

// Has reports whether an outcome exists for the id.
func (s *Store) Has(sequenceID string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketOutcomes).Get([]byte(sequenceID)) != nil
		return nil
	})
	return found, err
}

// List returns all stored outcomes in key order.
func (s *Store) List() ([]api.PartitionV1, error) {
	var out []api.PartitionV1
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutcomes).ForEach(func(k, data []byte) error {
			var v api.PartitionV1
			if err := json.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("outcome %s: %w", k, err)
			}
			out = append(out, v)
			return nil
		})
	})
	return out, err
}
