package domain

import "github.com/shopspring/decimal"

// RefundDraft — черновик возврата, присланный клиентом: количество к
// возврату по идентификаторам строк. Цены и поставщиков черновик не
// несёт и нести не может — они берутся только из свежего снимка заказа.
type RefundDraft map[string]int

// RefundEntry — строка возврата, прошедшая проверку владения и количества.
type RefundEntry struct {
	LineItemID string
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// ValidatedRefundRequest — проверенный черновик. Создаётся только
// валидатором и никогда не бывает пустым.
type ValidatedRefundRequest struct {
	OrderID string
	Entries []RefundEntry
}

// RefundCommitEntry — инструкция возврата по одной строке заказа.
type RefundCommitEntry struct {
	LineItemID string `json:"line_item_id"`
	Quantity   int    `json:"quantity"`
}

// RefundTransaction — балансирующая денежная операция возврата,
// помеченная как ручное урегулирование.
type RefundTransaction struct {
	Kind     string          `json:"kind"`
	Gateway  string          `json:"gateway"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// RefundCommit — готовая инструкция для внешней границы проведения
// возвратов. На этом значении ответственность ядра заканчивается.
type RefundCommit struct {
	OrderID     string              `json:"order_id"`
	Entries     []RefundCommitEntry `json:"refund_line_items"`
	Transaction RefundTransaction   `json:"transaction"`
	Amount      decimal.Decimal     `json:"amount"`
	Currency    string              `json:"currency"`
	Note        string              `json:"note,omitempty"`
}

// RefundReceipt — подтверждение проведённого возврата.
type RefundReceipt struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}
