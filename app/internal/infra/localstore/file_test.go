package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
)

func sampleItems() domcart.Items {
	return domcart.Items{
		{ProductID: 1, Name: "Organic Honey", UnitPrice: 1250, Option: "500g", Quantity: 3},
		{ProductID: 2, Name: "Farm Fresh Eggs", UnitPrice: 675, Option: "Dozen", Quantity: 1},
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "cart.json"), "")

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	s := NewFileStore(path, "")

	require.NoError(t, s.Save(context.Background(), sampleItems()))

	got, err := NewFileStore(path, "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, sampleItems(), got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"mansouriaCart"`)
	require.Contains(t, string(raw), `"imageUrl"`)
}

func TestFileStore_KeepsOtherRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"\"dark\""}`), 0o600))

	s := NewFileStore(path, "")
	require.NoError(t, s.Save(context.Background(), sampleItems()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"theme"`)
}

func TestFileStore_MalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mansouriaCart":{"not":"a list"}}`), 0o600))

	_, err := NewFileStore(path, "").Load(context.Background())
	require.Error(t, err)
}

func TestFileStore_MalformedDocumentIsReplacedOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{{{`), 0o600))
	s := NewFileStore(path, "")

	_, err := s.Load(context.Background())
	require.Error(t, err)

	require.NoError(t, s.Save(context.Background(), domcart.Items{}))
	items, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}
