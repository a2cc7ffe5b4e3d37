/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const bucketCredentials = "Credentials"

var _ Store = (*BoltStore)(nil)

// BoltStore persists session values in a bbolt file so that a login
// survives between invocations of the CLI.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the credential file at filePath
func OpenBolt(filePath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credential directory: %w", err)
	}

	// 0600 because the file holds bearer tokens. The timeout lets a second
	// invocation wait briefly if another one holds the file lock.
	db, err := bbolt.Open(filePath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists([]byte(bucketCredentials))
		if createErr != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketCredentials, createErr)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Get(key string) (string, error) {
	var value string
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCredentials))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketCredentials)
		}

		// Copy, the slice is only valid inside the transaction
		if data := bucket.Get([]byte(key)); data != nil {
			value = string(data)
		}
		return nil
	})
	return value, err
}

// Put stores all values in a single transaction
func (b *BoltStore) Put(values map[string]string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketCredentials))
		if err != nil {
			return fmt.Errorf("%s bucket not found: %w", bucketCredentials, err)
		}

		for k, v := range values {
			if err = bucket.Put([]byte(k), []byte(v)); err != nil {
				return fmt.Errorf("failed to store %s: %w", k, err)
			}
		}
		return nil
	})
}

// Delete removes keys in a single transaction. Missing keys are not an error.
func (b *BoltStore) Delete(keys ...string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketCredentials))
		if bucket == nil {
			return nil
		}

		for _, k := range keys {
			if err := bucket.Delete([]byte(k)); err != nil {
				return fmt.Errorf("error deleting %s: %w", k, err)
			}
		}
		return nil
	})
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
