package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/example/vendor-order-service/internal/domain"
)

// ApplyScope — проекция заказа на область видимости.
// Под ограниченной областью видимы только строки с точным совпадением
// поставщика; агрегаты пересчитываются по видимому подмножеству от
// авторитетных original_total. Пустой видимый набор для сотрудника с
// назначением — нарушение доступа, а не пустой результат: администратор
// с необязательным фильтром просто исследует данные, сотрудник же
// открыл заказ, на который не имеет законного вида.
func ApplyScope(o domain.Order, scope domain.EffectiveScope) (domain.ScopedOrder, error) {
	visible := make([]domain.LineItem, 0, len(o.Items))
	subtotal := decimal.Zero
	for _, it := range o.Items {
		if !scope.Allows(it.Vendor) {
			continue
		}
		visible = append(visible, it)
		subtotal = subtotal.Add(it.OriginalTotal)
	}
	if len(visible) == 0 && scope.Assigned {
		return domain.ScopedOrder{}, domain.ErrForbidden
	}
	return domain.ScopedOrder{
		ID:                o.ID,
		Name:              o.Name,
		FinancialStatus:   o.FinancialStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		Currency:          o.Currency,
		DateCreated:       o.DateCreated,
		Vendor:            scope.Vendor,
		Items:             visible,
		VisibleItemCount:  len(visible),
		VisibleSubtotal:   subtotal,
	}, nil
}
