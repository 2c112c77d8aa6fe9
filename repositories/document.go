package repositories

import (
	"encoding/json"
	"fmt"
	"teamchat/errors"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how many times a serializable transaction is
// replayed after Badger reports a write conflict.
const maxConflictRetries = 10

// getJSON decodes the document stored at key. A missing key is reported as
// errors.ErrNotFound wrapped with the given entity name.
func getJSON(txn *badger.Txn, key string, entity string, v any) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, entity)
	}
	if err != nil {
		return err
	}
	return decode(item, v)
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set([]byte(key), data)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	switch err {
	case nil:
		return true, nil
	case badger.ErrKeyNotFound:
		return false, nil
	default:
		return false, err
	}
}

// scanPrefix visits every key under prefix in ascending order, or descending
// when reverse is set. Returning false from fn stops the scan.
func scanPrefix(txn *badger.Txn, prefix string, reverse bool, fn func(item *badger.Item) (bool, error)) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	options.Reverse = reverse
	it := txn.NewIterator(options)
	defer it.Close()

	seek := []byte(prefix)
	if reverse {
		// Seek past the last key carrying the prefix.
		seek = append(seek, 0xFF)
	}
	for it.Seek(seek); it.ValidForPrefix([]byte(prefix)); it.Next() {
		next, err := fn(it.Item())
		if err != nil {
			return err
		}
		if !next {
			return nil
		}
	}
	return nil
}

// keySuffix returns the part of item's key after prefix.
func keySuffix(item *badger.Item, prefix string) string {
	return string(item.Key()[len(prefix):])
}

// update runs fn in a read-write transaction, replaying it when a concurrent
// transaction committed a conflicting write first.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
	}
	return err
}

func decode(item *badger.Item, v any) error {
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
