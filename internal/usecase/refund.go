package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/vendor-order-service/internal/domain"
)

// ValidateDraft — проверка черновика возврата по свежему снимку заказа.
// Проверка атомарна: любое нарушение владения или количества отклоняет
// черновик целиком, частичных возвратов не бывает. Неположительные
// количества считаются очищенным полем и молча отбрасываются; если
// после отбрасывания строк не осталось — ErrEmptyRefund.
func ValidateDraft(draft domain.RefundDraft, o domain.Order, scope domain.EffectiveScope) (domain.ValidatedRefundRequest, error) {
	if err := o.CheckIntegrity(); err != nil {
		return domain.ValidatedRefundRequest{}, err
	}
	byID := make(map[string]domain.LineItem, len(o.Items))
	for _, it := range o.Items {
		byID[it.ID] = it
	}
	for id, qty := range draft {
		if qty <= 0 {
			continue
		}
		if _, ok := byID[id]; !ok {
			return domain.ValidatedRefundRequest{}, fmt.Errorf("line item %s: %w", id, domain.ErrNotFound)
		}
	}
	// порядок строк возврата повторяет порядок строк заказа
	entries := make([]domain.RefundEntry, 0, len(draft))
	for _, it := range o.Items {
		qty, ok := draft[it.ID]
		if !ok || qty <= 0 {
			continue
		}
		if !scope.Allows(it.Vendor) {
			return domain.ValidatedRefundRequest{}, &domain.ScopeViolationError{LineItemID: it.ID, Vendor: it.Vendor}
		}
		// потолок — остаток к возврату, а не купленное количество:
		// уже возвращённое не возвращается повторно
		if qty > it.RefundableQuantity {
			return domain.ValidatedRefundRequest{}, &domain.QuantityError{LineItemID: it.ID, Requested: qty, Refundable: it.RefundableQuantity}
		}
		entries = append(entries, domain.RefundEntry{
			LineItemID: it.ID,
			Title:      it.Title,
			Quantity:   qty,
			UnitPrice:  it.UnitPrice,
		})
	}
	if len(entries) == 0 {
		return domain.ValidatedRefundRequest{}, domain.ErrEmptyRefund
	}
	return domain.ValidatedRefundRequest{OrderID: o.ID, Entries: entries}, nil
}

// BuildCommit — свод проверенного запроса в инструкцию возврата.
// Сумма считается точно как Σ unit_price × qty и округляется один раз,
// в конце, до минорных единиц валюты — округление построчно копило бы
// ошибку. База отличается от VisibleSubtotal (original_total) намеренно,
// вслед за двумя исходными расчётами.
func BuildCommit(req domain.ValidatedRefundRequest, o domain.Order, note string) (domain.RefundCommit, error) {
	if len(req.Entries) == 0 {
		return domain.RefundCommit{}, domain.ErrEmptyRefund
	}
	total := decimal.Zero
	entries := make([]domain.RefundCommitEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		if e.Quantity <= 0 || e.Quantity > domain.MaxItemQuantity {
			return domain.RefundCommit{}, &domain.MalformedDataError{OrderID: req.OrderID, Reason: "refund quantity out of bounds for line item " + e.LineItemID}
		}
		if e.UnitPrice.IsNegative() {
			return domain.RefundCommit{}, &domain.MalformedDataError{OrderID: req.OrderID, Reason: "negative unit price for line item " + e.LineItemID}
		}
		total = total.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity))))
		entries = append(entries, domain.RefundCommitEntry{LineItemID: e.LineItemID, Quantity: e.Quantity})
	}
	amount := total.Round(domain.CurrencyExponent(o.Currency))
	return domain.RefundCommit{
		OrderID: req.OrderID,
		Entries: entries,
		Transaction: domain.RefundTransaction{
			Kind:     "REFUND",
			Gateway:  "manual",
			Amount:   amount,
			Currency: o.Currency,
		},
		Amount:   amount,
		Currency: o.Currency,
		Note:     note,
	}, nil
}
