package sqlstore

import (
	"context"

	domcontact "example.com/farm-retreat/app/internal/domain/contact"
)

type ContactRepository struct {
	db *DB
}

func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, m *domcontact.Message) (*domcontact.Message, error) {
	id, err := r.db.insert(ctx, r.db, `
        INSERT INTO contact_messages (name, email, message, created_at)
        VALUES (?, ?, ?, ?)`,
		m.Name, m.Email, m.Message, m.CreatedAt.UnixMilli())
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}
