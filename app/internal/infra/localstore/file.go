// Package localstore persists the storefront cart on the shopper's side,
// either in a local JSON file or in Redis.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
)

const DefaultKey = "mansouriaCart"

// FileStore keeps records in one JSON document, keyed by storage key,
// the way a browser's localStorage does.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

func NewFileStore(path, key string) *FileStore {
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{path: path, key: key}
}

// Load returns an empty cart when the file or the record does not exist.
func (s *FileStore) Load(ctx context.Context) (domcart.Items, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[s.key]
	if !ok {
		return domcart.Items{}, nil
	}

	var items domcart.Items
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", s.key, err)
	}
	if items == nil {
		items = domcart.Items{}
	}
	return items, nil
}

func (s *FileStore) Save(ctx context.Context, items domcart.Items) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		// a broken document is replaced rather than blocking every write
		doc = map[string]json.RawMessage{}
	}

	if items == nil {
		items = domcart.Items{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	doc[s.key] = raw

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return writeAtomic(s.path, out)
}

func (s *FileStore) readDoc() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".storefront-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
