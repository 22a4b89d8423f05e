package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

func TestItems_TotalAndCount(t *testing.T) {
	items := Items{
		{ProductID: 1, Option: "500g", UnitPrice: 1250, Quantity: 3},
		{ProductID: 2, Option: "Dozen", UnitPrice: 675, Quantity: 2},
	}
	require.Equal(t, int64(3750+1350), items.Total())
	require.Equal(t, int64(5), items.Count())
	require.Equal(t, int64(0), Items(nil).Total())
}

func TestItems_Find(t *testing.T) {
	items := Items{
		{ProductID: 1, Option: "250g"},
		{ProductID: 1, Option: "500g"},
	}
	require.Equal(t, 1, items.Find(Key{ProductID: 1, Option: "500g"}))
	require.Equal(t, -1, items.Find(Key{ProductID: 1, Option: "1kg"}))
	require.Equal(t, -1, items.Find(Key{ProductID: 2, Option: "500g"}))
}

func TestItems_CloneDoesNotAlias(t *testing.T) {
	items := Items{{ProductID: 1, Option: "500g", Quantity: 1}}
	cloned := items.Clone()
	cloned[0].Quantity = 9
	require.Equal(t, int64(1), items[0].Quantity)
}

func TestFromProduct(t *testing.T) {
	honey := &domproduct.Product{
		ID:       1,
		Name:     "Organic Honey",
		Price:    1250,
		ImageURL: "honey.jpg",
		Options:  []string{"250g", "500g"},
		Active:   true,
	}

	item, err := FromProduct(honey, " 500g ", 2)
	require.NoError(t, err)
	require.Equal(t, LineItem{ProductID: 1, Name: "Organic Honey", UnitPrice: 1250, ImageURL: "honey.jpg", Option: "500g", Quantity: 2}, item)

	_, err = FromProduct(honey, "1kg", 1)
	require.ErrorIs(t, err, domproduct.ErrUnknownOption)

	_, err = FromProduct(honey, "500g", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	honey.Active = false
	_, err = FromProduct(honey, "500g", 1)
	require.ErrorIs(t, err, domproduct.ErrProductInactive)
}

func TestItems_Validate(t *testing.T) {
	require.NoError(t, Items{{ProductID: 1, Option: "a", Quantity: 1}, {ProductID: 1, Option: "b", Quantity: 2}}.Validate())
	require.ErrorIs(t, Items{{ProductID: 1, Option: "a", Quantity: 0}}.Validate(), ErrCorruptItems)
	require.ErrorIs(t, Items{{ProductID: 1, Option: "a", Quantity: 1}, {ProductID: 1, Option: "a", Quantity: 1}}.Validate(), ErrCorruptItems)
}
