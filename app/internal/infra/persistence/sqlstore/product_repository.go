package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, benefits, price, category, image_url, options, active`

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	options, err := encodeOptions(p.Options)
	if err != nil {
		return nil, err
	}
	id, err := r.db.insert(ctx, r.db, `
        INSERT INTO products (name, description, benefits, price, category, image_url, options, active)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Benefits, p.Price, p.Category, p.ImageURL, options, p.Active)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	options, err := encodeOptions(p.Options)
	if err != nil {
		return nil, err
	}
	res, err := r.db.exec(ctx, r.db, `
        UPDATE products
        SET name = ?, description = ?, benefits = ?, price = ?, category = ?, image_url = ?, options = ?, active = ?
        WHERE id = ?`,
		p.Name, p.Description, p.Benefits, p.Price, p.Category, p.ImageURL, options, p.Active, p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		// MySQL reports zero affected rows when nothing changed
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, r.db, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.queryRow(ctx, r.db, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var clauses []string
	var args []any

	if filter.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, strings.ToLower(filter.Category))
	}
	if filter.Search != "" {
		clauses = append(clauses, "LOWER(name) LIKE ?")
		args = append(args, fmt.Sprintf("%%%s%%", strings.ToLower(filter.Search)))
	}
	if filter.OnlyActive {
		clauses = append(clauses, "active = ?")
		args = append(args, true)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.query(ctx, r.db, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*domproduct.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.queryRow(ctx, r.db, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*domproduct.Product, error) {
	var p domproduct.Product
	var options string
	if err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Benefits, &p.Price, &p.Category, &p.ImageURL, &options, &p.Active); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
		return nil, fmt.Errorf("product %d options: %w", p.ID, err)
	}
	return &p, nil
}

func encodeOptions(options []string) (string, error) {
	if options == nil {
		options = []string{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
