package oms

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/example/vendor-order-service/internal/domain"
)

// MemorySink — сток возвратов для разработки и тестов: принимает всё и
// выдаёт ссылочный идентификатор, запоминая инструкции.
type MemorySink struct {
	mu      sync.Mutex
	commits []domain.RefundCommit
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Submit(_ context.Context, commit domain.RefundCommit) (domain.RefundReceipt, error) {
	s.mu.Lock()
	s.commits = append(s.commits, commit)
	s.mu.Unlock()
	return domain.RefundReceipt{Reference: uuid.NewString()}, nil
}

// Commits — копия принятых инструкций.
func (s *MemorySink) Commits() []domain.RefundCommit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RefundCommit, len(s.commits))
	copy(out, s.commits)
	return out
}

var _ domain.RefundSink = (*MemorySink)(nil)
