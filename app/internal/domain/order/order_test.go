package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
)

func TestNewPayload_SnapshotsCart(t *testing.T) {
	items := domcart.Items{
		{ProductID: 1, Name: "Organic Honey", UnitPrice: 1250, ImageURL: "honey.jpg", Option: "500g", Quantity: 3},
	}
	p := NewPayload(Contact{Name: "Amina", Phone: "555", Address: "Farm road"}, items)

	require.Equal(t, int64(3750), p.Total)
	require.Equal(t, p.Total, p.ItemsTotal())
	require.Equal(t, Item{ProductID: 1, Name: "Organic Honey", Price: 1250, Quantity: 3, Option: "500g", ImageURL: "honey.jpg"}, p.Items[0])

	items[0].Quantity = 10
	require.Equal(t, int64(3), p.Items[0].Quantity)
	require.Equal(t, int64(3750), p.Total)
}

func TestNewPayload_EmptyCart(t *testing.T) {
	p := NewPayload(Contact{}, nil)
	require.NotNil(t, p.Items)
	require.Empty(t, p.Items)
	require.Zero(t, p.Total)
}
