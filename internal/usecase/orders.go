package usecase

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/example/vendor-order-service/internal/domain"
)

// GetScopedOrder — выдать заказ в области видимости инициатора.
// Обработчики никогда не передают сырой фильтр дальше: вниз уходит
// только результат ResolveScope.
type GetScopedOrder struct {
	Directory domain.VendorDirectory
	Cache     domain.OrderCache
}

func (uc GetScopedOrder) Execute(ctx context.Context, orderID string, p domain.Principal, requestedVendor string) (domain.ScopedOrder, error) {
	scope, err := resolveRequestScope(ctx, uc.Directory, p, requestedVendor)
	if err != nil {
		return domain.ScopedOrder{}, err
	}
	o, ok := uc.Cache.Get(orderID)
	if !ok {
		return domain.ScopedOrder{}, domain.ErrNotFound
	}
	return ApplyScope(o, scope)
}

// ListOrders — сводка заказов в области видимости инициатора.
// Под ограниченной областью заказы без видимых строк опускаются, а
// счётчики считаются по видимым строкам: список не раскрывает состав
// чужих заказов.
type ListOrders struct {
	Directory domain.VendorDirectory
	Cache     domain.OrderCache
}

func (uc ListOrders) Execute(ctx context.Context, p domain.Principal, requestedVendor string) ([]domain.OrderSummary, error) {
	scope, err := resolveRequestScope(ctx, uc.Directory, p, requestedVendor)
	if err != nil {
		return nil, err
	}
	orders := uc.Cache.All()
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].DateCreated != orders[j].DateCreated {
			return orders[i].DateCreated > orders[j].DateCreated
		}
		return orders[i].ID < orders[j].ID
	})
	summaries := make([]domain.OrderSummary, 0, len(orders))
	for _, o := range orders {
		count := 0
		for _, it := range o.Items {
			if scope.Allows(it.Vendor) {
				count++
			}
		}
		if count == 0 && scope.Restricted() {
			continue
		}
		summaries = append(summaries, domain.OrderSummary{
			ID:              o.ID,
			Name:            o.Name,
			FinancialStatus: o.FinancialStatus,
			ItemCount:       count,
		})
	}
	return summaries, nil
}

// SubmitRefund — проверить черновик и провести возврат.
// Снимок заказа перечитывается из репозитория в момент проверки:
// данным, показанным клиенту раньше, доверять нельзя — между чтением и
// записью заказ мог измениться, а черновик мог быть подделан.
type SubmitRefund struct {
	Directory domain.VendorDirectory
	Repo      domain.OrderRepository
	Sink      domain.RefundSink
}

func (uc SubmitRefund) Execute(ctx context.Context, orderID string, p domain.Principal, draft domain.RefundDraft, note string) (domain.RefundReceipt, error) {
	scope, err := resolveRequestScope(ctx, uc.Directory, p, "")
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	o, err := uc.Repo.Get(ctx, orderID)
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	// заказ вообще должен быть виден инициатору
	if _, err := ApplyScope(o, scope); err != nil {
		return domain.RefundReceipt{}, err
	}
	validated, err := ValidateDraft(draft, o, scope)
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	commit, err := BuildCommit(validated, o, note)
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	// отказ внешней системы не повторяется автоматически: слепой
	// повтор денежной мутации грозит двойным возвратом
	receipt, err := uc.Sink.Submit(ctx, commit)
	if err != nil {
		return domain.RefundReceipt{}, err
	}
	receipt.Amount = commit.Amount
	receipt.Currency = commit.Currency
	return receipt, nil
}

// LoadCache — загрузить все заказы из репозитория в кэш при старте.
type LoadCache struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc LoadCache) Execute(ctx context.Context) error {
	return uc.Repo.LoadAll(ctx, func(id string, raw []byte) error {
		var o domain.Order
		if err := json.Unmarshal(raw, &o); err != nil {
			// пропускаем битые записи, не прерывая полную загрузку
			return nil
		}
		uc.Cache.Set(id, o)
		return nil
	})
}

// ProcessIncomingOrder — принять событие ленты заказов: проверить,
// сохранить и обновить кэш.
type ProcessIncomingOrder struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, raw []byte) error {
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return err
	}
	if o.ID == "" {
		return domain.ErrValidation
	}
	if err := o.CheckIntegrity(); err != nil {
		return err
	}
	if err := uc.Repo.Upsert(ctx, o.ID, raw); err != nil {
		return err
	}
	uc.Cache.Set(o.ID, o)
	return nil
}
