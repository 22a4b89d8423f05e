package contact

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	domcontact "example.com/farm-retreat/app/internal/domain/contact"
)

type Service struct {
	repo domcontact.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo domcontact.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

func (s *Service) Submit(ctx context.Context, m *domcontact.Message) (*domcontact.Message, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Message = strings.TrimSpace(m.Message)
	m.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	s.log.Info("contact message received", zap.Int64("message_id", created.ID), zap.String("email", created.Email))
	return created, nil
}
