package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	dom "example.com/farm-retreat/app/internal/domain/user"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *dom.User) (*dom.User, error) {
	id, err := r.db.insert(ctx, r.db,
		`INSERT INTO users (username, password_hash) VALUES (?, ?)`,
		u.Username, u.PasswordHash,
	)
	if err != nil {
		if isDuplicate(err) {
			return nil, dom.ErrUsernameTaken
		}
		return nil, err
	}
	u.ID = id
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*dom.User, error) {
	row := r.db.queryRow(ctx, r.db,
		`SELECT id, username, password_hash FROM users WHERE username = ?`, username)

	var u dom.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dom.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
