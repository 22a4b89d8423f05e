package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domorder "example.com/farm-retreat/app/internal/domain/order"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create stores the order header and its items in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (_ *domorder.Order, retErr error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	orderID, err := r.db.insert(ctx, tx, `
        INSERT INTO orders (name, email, phone, address, notes, total, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.Contact.Name, o.Contact.Email, o.Contact.Phone, o.Contact.Address, o.Contact.Notes,
		o.Total, o.CreatedAt.UnixMilli())
	if err != nil {
		return nil, err
	}

	for _, it := range o.Items {
		_, err = r.db.exec(ctx, tx, `
            INSERT INTO order_items (order_id, product_id, name, price, quantity, item_option, image_url)
            VALUES (?, ?, ?, ?, ?, ?, ?)`,
			orderID, it.ProductID, it.Name, it.Price, it.Quantity, it.Option, it.ImageURL)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	o.ID = orderID
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	row := r.db.queryRow(ctx, r.db, `
        SELECT id, name, email, phone, address, notes, total, created_at
        FROM orders WHERE id = ?`, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

// List returns every order, newest first, with items attached.
func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	rows, err := r.db.query(ctx, r.db, `
        SELECT id, name, email, phone, address, notes, total, created_at
        FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*domorder.Order{}
	var ids []int64
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domorder.Item, error) {
	args := make([]any, len(orderIDs))
	for i, id := range orderIDs {
		args[i] = id
	}

	rows, err := r.db.query(ctx, r.db, `
        SELECT order_id, product_id, name, price, quantity, item_option, image_url
        FROM order_items
        WHERE order_id IN (`+placeholders(len(orderIDs))+`)
        ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]domorder.Item, len(orderIDs))
	for rows.Next() {
		var orderID int64
		var it domorder.Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.Option, &it.ImageURL); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

func scanOrder(s scanner) (*domorder.Order, error) {
	var o domorder.Order
	var createdAt int64
	if err := s.Scan(&o.ID, &o.Contact.Name, &o.Contact.Email, &o.Contact.Phone, &o.Contact.Address,
		&o.Contact.Notes, &o.Total, &createdAt); err != nil {
		return nil, err
	}
	o.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &o, nil
}
