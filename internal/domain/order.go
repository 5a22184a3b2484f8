package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Санитарная граница количеств в данных источника.
const MaxItemQuantity = 1_000_000

var maxUnitPrice = decimal.NewFromInt(1_000_000_000)

// LineItem — строка заказа: товар одного поставщика с остатком к возврату.
type LineItem struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	SKU                string          `json:"sku"`
	Quantity           int             `json:"quantity"`
	RefundableQuantity int             `json:"refundable_quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	OriginalTotal      decimal.Decimal `json:"original_total"`
	Vendor             string          `json:"vendor"`
}

// Order — снимок заказа из внешней системы управления заказами.
type Order struct {
	ID                string     `json:"order_id"`
	Name              string     `json:"name"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	Currency          string     `json:"currency"`
	DateCreated       string     `json:"date_created"`
	Items             []LineItem `json:"line_items"`
}

// ScopedOrder — проекция заказа на область видимости запроса.
// VisibleSubtotal суммирует авторитетные original_total строк; суммы
// возвратов считаются от unit_price и на отдельных входах могут
// расходиться с этой величиной на цент.
type ScopedOrder struct {
	ID                string          `json:"order_id"`
	Name              string          `json:"name"`
	FinancialStatus   string          `json:"financial_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	Currency          string          `json:"currency"`
	DateCreated       string          `json:"date_created"`
	Vendor            string          `json:"vendor,omitempty"`
	Items             []LineItem      `json:"line_items"`
	VisibleItemCount  int             `json:"visible_item_count"`
	VisibleSubtotal   decimal.Decimal `json:"visible_subtotal"`
}

// OrderSummary — строка списка заказов.
type OrderSummary struct {
	ID              string `json:"order_id"`
	Name            string `json:"name"`
	FinancialStatus string `json:"financial_status"`
	ItemCount       int    `json:"item_count"`
}

// CheckIntegrity — проверка инвариантов данных источника перед любой
// денежной арифметикой.
func (o Order) CheckIntegrity() error {
	for _, it := range o.Items {
		switch {
		case it.ID == "":
			return &MalformedDataError{OrderID: o.ID, Reason: "line item without id"}
		case it.Quantity < 0 || it.Quantity > MaxItemQuantity:
			return &MalformedDataError{OrderID: o.ID, Reason: "quantity out of bounds for line item " + it.ID}
		case it.RefundableQuantity < 0 || it.RefundableQuantity > it.Quantity:
			return &MalformedDataError{OrderID: o.ID, Reason: "refundable quantity out of bounds for line item " + it.ID}
		case it.UnitPrice.IsNegative() || it.UnitPrice.GreaterThanOrEqual(maxUnitPrice):
			return &MalformedDataError{OrderID: o.ID, Reason: "unit price out of bounds for line item " + it.ID}
		case it.OriginalTotal.IsNegative():
			return &MalformedDataError{OrderID: o.ID, Reason: "negative original total for line item " + it.ID}
		}
	}
	return nil
}

// CurrencyExponent — число знаков минорных единиц валюты.
func CurrencyExponent(code string) int32 {
	switch strings.ToUpper(code) {
	case "BIF", "CLP", "DJF", "GNF", "JPY", "KMF", "KRW", "PYG", "RWF", "UGX", "VND", "VUV", "XAF", "XOF", "XPF":
		return 0
	case "BHD", "IQD", "JOD", "KWD", "LYD", "OMR", "TND":
		return 3
	default:
		return 2
	}
}
