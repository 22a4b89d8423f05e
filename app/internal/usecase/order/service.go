package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	domorder "example.com/farm-retreat/app/internal/domain/order"
)

type Service struct {
	repo domorder.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo domorder.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// Place stores a submitted order. The payload must carry at least one
// item and its total must equal the sum of its line prices.
func (s *Service) Place(ctx context.Context, p domorder.Payload) (*domorder.Order, error) {
	if len(p.Items) == 0 {
		return nil, domorder.ErrEmptyOrderItems
	}
	for _, it := range p.Items {
		if it.Quantity < 1 || it.Price < 0 {
			return nil, domorder.ErrInvalidItem
		}
	}
	if p.ItemsTotal() != p.Total {
		return nil, domorder.ErrTotalMismatch
	}

	items := make([]domorder.Item, len(p.Items))
	copy(items, p.Items)

	created, err := s.repo.Create(ctx, &domorder.Order{
		Contact:   p.Contact,
		Items:     items,
		Total:     p.Total,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order received",
		zap.Int64("order_id", created.ID),
		zap.String("customer", created.Contact.Name),
		zap.Int("items", len(created.Items)),
		zap.Int64("total", created.Total),
	)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*domorder.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	return s.repo.GetByID(ctx, id)
}
