// ABOUTME: Charm KV client wrapper for health record storage.
// ABOUTME: Type-prefixed keys, JSON values, automatic cloud sync.
package charmkv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/charmbracelet/charm/kv"
	"github.com/sirupsen/logrus"
)

const (
	dbName = "vitals"

	LogPrefix      = "log:"
	ScanPrefix     = "scan:"
	InsightPrefix  = "insight:"
	MedPrefix      = "med:"
	IntakePrefix   = "intake:"
	ActivityPrefix = "activity:"
)

// Client is a Charm KV backed implementation of the storage interface.
// Data is E2E encrypted with the user's Charm keys and synced across
// devices on each write.
type Client struct {
	kv  *kv.KV
	log *logrus.Logger
	mu  sync.RWMutex
}

// Open opens the Charm KV database, pulling remote state first.
func Open() (*Client, error) {
	db, err := kv.OpenWithDefaults(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	c := &Client{kv: db, log: log}

	if err := db.Sync(); err != nil {
		// Offline is fine; local data still serves reads
		log.WithError(err).Warn("initial charm sync failed, continuing with local data")
	}

	return c, nil
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// set writes a key and syncs to Charm Cloud.
func (c *Client) set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), data); err != nil {
		return err
	}
	if err := c.kv.Sync(); err != nil {
		c.log.WithError(err).WithField("key", key).Warn("charm sync failed after write")
	}
	return nil
}

// listByPrefix returns all values whose keys carry the given prefix, in
// key order.
func (c *Client) listByPrefix(prefix string) ([][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	p := []byte(prefix)
	var values [][]byte
	for _, key := range keys {
		if !bytes.HasPrefix(key, p) {
			continue
		}
		val, err := c.kv.Get(key)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}

func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
