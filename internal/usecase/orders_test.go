package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/example/vendor-order-service/internal/adapter/cache"
	"github.com/example/vendor-order-service/internal/domain"
)

type fakeRepo struct {
	orders map[string]domain.Order
}

func (r *fakeRepo) Upsert(_ context.Context, id string, _ []byte) error { return nil }

func (r *fakeRepo) Get(_ context.Context, id string) (domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, nil
}

func (r *fakeRepo) LoadAll(_ context.Context, fn func(id string, raw []byte) error) error {
	return nil
}

type fakeSink struct {
	commits []domain.RefundCommit
	err     error
}

func (s *fakeSink) Submit(_ context.Context, commit domain.RefundCommit) (domain.RefundReceipt, error) {
	if s.err != nil {
		return domain.RefundReceipt{}, s.err
	}
	s.commits = append(s.commits, commit)
	return domain.RefundReceipt{Reference: "re-1"}, nil
}

func TestGetScopedOrder(t *testing.T) {
	orderCache := cache.NewMemoryOrderCache()
	orderCache.Set("1001", fixtureOrder())
	uc := GetScopedOrder{
		Directory: mapDirectory{"vendor1@example.com": "Nike"},
		Cache:     orderCache,
	}

	t.Run("staff sees own items only", func(t *testing.T) {
		scoped, err := uc.Execute(context.Background(), "1001", domain.Principal{Email: "vendor1@example.com"}, "")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if scoped.VisibleItemCount != 2 || scoped.Vendor != "Nike" {
			t.Errorf("scoped = %+v", scoped)
		}
	})

	t.Run("staff filter for another vendor is ignored", func(t *testing.T) {
		scoped, err := uc.Execute(context.Background(), "1001", domain.Principal{Email: "vendor1@example.com"}, "Acme")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if scoped.Vendor != "Nike" {
			t.Errorf("effective vendor = %q, want Nike", scoped.Vendor)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "nope", domain.Principal{}, "")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Execute() error = %v, want not found", err)
		}
	})
}

func TestListOrdersScoped(t *testing.T) {
	orderCache := cache.NewMemoryOrderCache()
	orderCache.Set("1001", fixtureOrder())
	acmeOnly := domain.Order{
		ID: "1002", Name: "#1002", FinancialStatus: "PAID", Currency: "USD",
		DateCreated: "2026-08-02T10:00:00Z",
		Items: []domain.LineItem{
			{ID: "li-9", Title: "Crate", Quantity: 1, RefundableQuantity: 1, UnitPrice: price("3.00"), OriginalTotal: price("3.00"), Vendor: "Acme"},
		},
	}
	orderCache.Set("1002", acmeOnly)
	uc := ListOrders{
		Directory: mapDirectory{"vendor1@example.com": "Nike"},
		Cache:     orderCache,
	}

	t.Run("administrator sees everything, newest first", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), domain.Principal{}, "")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "1002" || got[1].ID != "1001" {
			t.Fatalf("summaries = %+v", got)
		}
		if got[1].ItemCount != 3 {
			t.Errorf("item count = %d, want 3", got[1].ItemCount)
		}
	})

	t.Run("staff list hides foreign orders and counts", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), domain.Principal{Email: "vendor1@example.com"}, "")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "1001" {
			t.Fatalf("summaries = %+v", got)
		}
		if got[0].ItemCount != 2 {
			t.Errorf("item count = %d, want visible 2", got[0].ItemCount)
		}
	})
}

func TestSubmitRefund(t *testing.T) {
	repo := &fakeRepo{orders: map[string]domain.Order{"1001": fixtureOrder()}}
	dir := mapDirectory{"vendor1@example.com": "Nike"}

	t.Run("validated draft reaches the sink", func(t *testing.T) {
		sink := &fakeSink{}
		uc := SubmitRefund{Directory: dir, Repo: repo, Sink: sink}
		receipt, err := uc.Execute(context.Background(), "1001", domain.Principal{Email: "vendor1@example.com"}, domain.RefundDraft{"li-1": 2, "li-2": 1}, "")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if receipt.Reference != "re-1" {
			t.Errorf("reference = %q", receipt.Reference)
		}
		if !receipt.Amount.Equal(price("45.00")) || receipt.Currency != "USD" {
			t.Errorf("receipt = %+v, want 45.00 USD", receipt)
		}
		if len(sink.commits) != 1 {
			t.Fatalf("sink got %d commits", len(sink.commits))
		}
	})

	t.Run("foreign item aborts before the sink", func(t *testing.T) {
		sink := &fakeSink{}
		uc := SubmitRefund{Directory: dir, Repo: repo, Sink: sink}
		_, err := uc.Execute(context.Background(), "1001", domain.Principal{Email: "vendor1@example.com"}, domain.RefundDraft{"li-3": 1}, "")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("Execute() error = %v, want forbidden", err)
		}
		if len(sink.commits) != 0 {
			t.Error("rejected draft still reached the sink")
		}
	})

	t.Run("upstream rejection is surfaced verbatim", func(t *testing.T) {
		sink := &fakeSink{err: &domain.UpstreamRejectionError{Reasons: []string{"order already fully refunded"}}}
		uc := SubmitRefund{Directory: dir, Repo: repo, Sink: sink}
		_, err := uc.Execute(context.Background(), "1001", domain.Principal{}, domain.RefundDraft{"li-1": 1}, "")
		var rejected *domain.UpstreamRejectionError
		if !errors.As(err, &rejected) {
			t.Fatalf("Execute() error = %v, want upstream rejection", err)
		}
		if len(rejected.Reasons) != 1 || rejected.Reasons[0] != "order already fully refunded" {
			t.Errorf("reasons = %v", rejected.Reasons)
		}
	})
}
