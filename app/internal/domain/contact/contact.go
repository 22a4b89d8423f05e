package contact

import (
	"context"
	"time"
)

type Message struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, m *Message) (*Message, error)
}
